package commands

import (
	"log"

	"staffportal/backend/internal/pkg/repository/postgresql"

	"github.com/pkg/errors"
)

// ErrHelp provides context that help was given.
var ErrHelp = errors.New("provided help")

type Scheme struct {
	Index       int
	Description string
	Query       string
}

var scheme = []Scheme{
	{
		Index:       1,
		Description: "Create table: employees.",
		Query: `
        CREATE TABLE IF NOT EXISTS employees (
            id serial primary key,
            full_name text not null,
            designation text,
            salary numeric(12,2) not null default 0,
            pin text not null,
            phone varchar(20),
            photo text,
            created_at timestamp default now(),
            created_by int,
            updated_at timestamp,
            updated_by int,
            deleted_at timestamp,
            deleted_by int
        );`,
	},
	{
		Index:       2,
		Description: "Create table: attendance, unique per employee and work day.",
		Query: `
        CREATE TABLE IF NOT EXISTS attendance (
            id SERIAL PRIMARY KEY,
            employee_id INT NOT NULL REFERENCES employees(id),
            work_day DATE NOT NULL,
            come_time TIME NOT NULL,
            status TEXT NOT NULL,
            photo TEXT,
            latitude FLOAT,
            longitude FLOAT,
            address TEXT,
            created_at TIMESTAMP DEFAULT NOW(),
            created_by INT,
            updated_at TIMESTAMP,
            updated_by INT,
            deleted_at TIMESTAMP,
            deleted_by INT,
            CONSTRAINT attendance_employee_day_unique UNIQUE (employee_id, work_day)
        );`,
	},
	{
		Index:       3,
		Description: "Create table: admin_config with bootstrap password: admin123",
		Query: `
        CREATE TABLE IF NOT EXISTS admin_config (
            id serial primary key,
            password text not null,
            created_at timestamp default now(),
            created_by int,
            updated_at timestamp,
            updated_by int,
            deleted_at timestamp,
            deleted_by int
        );
        INSERT INTO admin_config(password)
        SELECT '$2a$10$8K0Yx1yZ7sUuVXrCIJ1cT.2oPq4o7Cwc5rBPGsUlF/2Ft1xJSLyBe'
        WHERE NOT EXISTS (SELECT id FROM admin_config);
        `,
	},
}

// Migrate creates the scheme in the database.
func Migrate(db *postgresql.Database) {
	for _, s := range scheme {
		if _, err := db.Exec(s.Query); err != nil {
			log.Fatalln("migrate error", s.Description, err)
		}
	}
}
