package main

import (
	"database/sql"
	"flag"
	"log"

	_ "modernc.org/sqlite"
)

// Sample students inserted on first run. Class values are deliberately
// mixed-case and there is no primary key, so duplicates stay possible.
var students = []struct {
	Name    string
	Class   string
	Marks   int
	Company string
}{
	{"Sijo", "BTech", 75, "JSW"},
	{"Lijo", "MTech", 69, "TCS"},
	{"Rijo", "BSc", 79, "WIPRO"},
	{"Sibin", "MSc", 89, "INFOSYS"},
	{"Dilsha", "Mcom", 99, "Cyient"},
	{"John", "MCom", 85, "ZOHO"},
	{"Charlie", "MCom", 77, "IBM"},
}

// One-time seeding step: ensures the Students table exists and is non-empty
// before the server is used for the first time.
func main() {
	path := flag.String("db", "data.db", "path to the SQLite database file")
	flag.Parse()

	db, err := sql.Open("sqlite", *path)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS Students (
	Name VARCHAR(30),
	Class VARCHAR(30),
	Marks INT,
	Company VARCHAR(30)
)`); err != nil {
		log.Fatalf("Failed to create Students table: %v", err)
	}

	var count int
	if err := db.QueryRow(`SELECT COUNT(*) FROM Students`).Scan(&count); err != nil {
		log.Fatalf("Failed to count Students rows: %v", err)
	}
	if count > 0 {
		log.Printf("Students already has %d row(s), nothing to seed", count)
		return
	}

	for _, s := range students {
		if _, err := db.Exec(`INSERT INTO Students VALUES (?, ?, ?, ?)`,
			s.Name, s.Class, s.Marks, s.Company); err != nil {
			log.Fatalf("Failed to insert student %s: %v", s.Name, err)
		}
	}

	log.Println("The inserted records:")
	rows, err := db.Query(`SELECT Name, Class, Marks, Company FROM Students`)
	if err != nil {
		log.Fatalf("Failed to read back Students rows: %v", err)
	}
	defer rows.Close()

	for rows.Next() {
		var name, class, company string
		var marks int
		if err := rows.Scan(&name, &class, &marks, &company); err != nil {
			log.Fatalf("Failed to scan Students row: %v", err)
		}
		log.Printf("(%s, %s, %d, %s)", name, class, marks, company)
	}
	if err := rows.Err(); err != nil {
		log.Fatalf("Failed to read back Students rows: %v", err)
	}
}
