package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// Seat grid and schedule shape for every showing created by the seed.
var (
	seedTimes = []string{"10:00 AM", "01:00 PM", "04:00 PM", "07:00 PM", "10:00 PM"}
	seedRows  = []string{"A", "B", "C", "D", "E", "F"}
)

const (
	seedDays        = 7
	seedSeatsPerRow = 8
)

type seedTheater struct {
	name    string
	address string
	area    string
}

type seedMovie struct {
	title       string
	image       string
	price       float64
	description string
	duration    string
}

var seedTheaters = []seedTheater{
	{"Inox Bund Garden", "Bund Garden Road, Near Ohel David Synagogue", "Bund Garden"},
	{"PVR Phoenix Marketcity", "Phoenix Marketcity Mall, Viman Nagar", "Viman Nagar"},
	{"Cinepolis Westend Mall", "Westend Mall, Aundh", "Aundh"},
	{"E-Square Multiplex", "E-Square, Shivaji Nagar", "Shivaji Nagar"},
	{"City Pride Kothrud", "Karve Road, Kothrud", "Kothrud"},
	{"Carnival Cinemas Wakad", "City One Mall, Wakad", "Wakad"},
}

var seedMovies = []seedMovie{
	{"The Dark Knight", "/images/The_Dark_Knight_poster_7a6cd56a.png", 1079, "When the menace known as the Joker wreaks havoc on Gotham", "2h 32min"},
	{"Inception", "/images/Inception_poster_d0098617.png", 1244, "A thief who steals corporate secrets through dream-sharing technology", "2h 28min"},
	{"Interstellar", "/images/Interstellar_poster_d75fd98b.png", 1161, "A team of explorers travel through a wormhole in space", "2h 49min"},
	{"The Matrix", "/images/The_Matrix_poster_634ab313.png", 995, "A computer hacker learns about the true nature of reality", "2h 16min"},
	{"Avengers: Endgame", "/images/Avengers_Endgame_poster_1113e999.png", 1327, "The Avengers assemble once more to reverse Thanos' actions", "3h 1min"},
	{"Parasite", "/images/Parasite_poster_b4f60cf4.png", 1079, "Greed and class discrimination threaten a new family bond", "2h 12min"},
}

// Seed populates reference data when the store is empty: the fixed
// theater and movie lists, then for every movie/theater pair one
// showtime per day for the next seven days at each of the five time
// slots, each showing getting a full unbooked 6x8 seat grid.  Seeding
// is idempotent and runs inside a single transaction so a crash midway
// leaves the store empty rather than half-populated.
func Seed(ctx context.Context, db *sql.DB) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	var theaterCount int
	if err := tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM theaters`).Scan(&theaterCount); err != nil {
		return err
	}
	theaterIDs := make([]int64, 0, len(seedTheaters))
	if theaterCount == 0 {
		for _, t := range seedTheaters {
			res, err := tx.ExecContext(ctx,
				`INSERT INTO theaters (name, address, area) VALUES (?, ?, ?)`,
				t.name, t.address, t.area)
			if err != nil {
				return err
			}
			id, err := res.LastInsertId()
			if err != nil {
				return err
			}
			theaterIDs = append(theaterIDs, id)
		}
	} else {
		rows, err := tx.QueryContext(ctx, `SELECT id FROM theaters ORDER BY id`)
		if err != nil {
			return err
		}
		defer rows.Close()
		for rows.Next() {
			var id int64
			if err := rows.Scan(&id); err != nil {
				return err
			}
			theaterIDs = append(theaterIDs, id)
		}
		if err := rows.Err(); err != nil {
			return err
		}
	}

	var movieCount int
	if err := tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM movies`).Scan(&movieCount); err != nil {
		return err
	}
	if movieCount > 0 {
		committed = true
		return tx.Commit()
	}

	dates := showDates(time.Now(), seedDays)
	for _, m := range seedMovies {
		res, err := tx.ExecContext(ctx,
			`INSERT INTO movies (title, image, price, description, duration) VALUES (?, ?, ?, ?, ?)`,
			m.title, m.image, m.price, m.description, m.duration)
		if err != nil {
			return err
		}
		movieID, err := res.LastInsertId()
		if err != nil {
			return err
		}
		for _, theaterID := range theaterIDs {
			for _, date := range dates {
				for _, slot := range seedTimes {
					stRes, err := tx.ExecContext(ctx,
						`INSERT INTO showtimes (movie_id, theater_id, show_date, show_time) VALUES (?, ?, ?, ?)`,
						movieID, theaterID, date, slot)
					if err != nil {
						return err
					}
					showtimeID, err := stRes.LastInsertId()
					if err != nil {
						return err
					}
					if err := insertSeatGrid(ctx, tx, showtimeID); err != nil {
						return err
					}
				}
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return err
	}
	committed = true
	return nil
}

// insertSeatGrid bulk-inserts the full seat grid for one showing in a
// single statement.
func insertSeatGrid(ctx context.Context, tx *sql.Tx, showtimeID int64) error {
	query := `INSERT INTO seats (showtime_id, seat_number, is_booked) VALUES `
	args := make([]interface{}, 0, len(seedRows)*seedSeatsPerRow*2)
	first := true
	for _, row := range seedRows {
		for num := 1; num <= seedSeatsPerRow; num++ {
			if !first {
				query += ","
			}
			first = false
			query += "(?, ?, 0)"
			args = append(args, showtimeID, fmt.Sprintf("%s%d", row, num))
		}
	}
	_, err := tx.ExecContext(ctx, query, args...)
	return err
}

// showDates returns n consecutive dates starting at from, formatted as
// the "YYYY-MM-DD" strings stored in showtimes.show_date.
func showDates(from time.Time, n int) []string {
	out := make([]string, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, from.AddDate(0, 0, i).Format("2006-01-02"))
	}
	return out
}
