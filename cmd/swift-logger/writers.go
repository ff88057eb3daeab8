package main

import (
	"database/sql"
	"encoding/csv"
	"fmt"
	"math"
	"os"
	"time"

	"github.com/go-kit/log/level"
	_ "github.com/mattn/go-sqlite3"

	"microswift-telemetry/sbd"
)

type Writer interface {
	Write(rec sbd.Record) error
	Rotate(timestamp time.Time) error
	Close() error
}

type DbWriter struct {
	db   *sql.DB
	stmt *sql.Stmt
}

func (db *DbWriter) Write(rec sbd.Record) error {
	_, err := db.stmt.Exec(
		rec.Datetime,
		rec.BuoyID,
		rec.SensorType,
		nullable(rec.SignificantHeight),
		nullable(rec.PeakPeriod),
		nullable(rec.PeakDirection),
		nullable(rec.Latitude),
		nullable(rec.Longitude),
		nullable(rec.Temperature),
		nullable(rec.Salinity),
		nullable(rec.Voltage),
	)
	return err
}

func (db *DbWriter) Rotate(timestamp time.Time) error {
	_ = db.Close()

	fileName := "./microswift-" + timestamp.Format("2006-01-02") + ".db"
	level.Info(logger).Log("rotating", fileName)

	var err error
	db.db, err = sql.Open("sqlite3", fileName)
	if err != nil {
		return err
	}

	// Ignore failures ("already exists")
	_, _ = db.db.Exec(`
			create table records(timestamp text, buoy text, sensor_type integer,
				hs float64, tp float64, dir float64,
				lat float64, lon float64, temp float64, salinity float64, voltage float64)
		`)

	db.stmt, err = db.db.Prepare(`
			insert into records(timestamp, buoy, sensor_type, hs, tp, dir, lat, lon, temp, salinity, voltage)
			values(strftime('%Y-%m-%d %H:%M:%f', ?), ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)

	return err
}

func (db *DbWriter) Close() error {
	if db.stmt != nil {
		db.stmt.Close()
	}
	if db.db != nil {
		return db.db.Close()
	}

	return nil
}

// nullable maps an absent (NaN) measurement to SQL NULL.
func nullable(v float64) interface{} {
	if math.IsNaN(v) {
		return nil
	}
	return v
}

type FileWriter struct {
	file *os.File
	c    *csv.Writer
}

func (fw *FileWriter) Write(rec sbd.Record) error {
	err := fw.c.Write([]string{
		rec.Datetime.Format("2006-01-02T15:04:05"),
		rec.BuoyID,
		fmt.Sprint(rec.SensorType),
		number(rec.SignificantHeight),
		number(rec.PeakPeriod),
		number(rec.PeakDirection),
		number(rec.Latitude),
		number(rec.Longitude),
		number(rec.Temperature),
		number(rec.Salinity),
		number(rec.Voltage),
	})
	return err
}

func (fw *FileWriter) Rotate(timestamp time.Time) error {
	_ = fw.Close()

	fileName := "./microswift-" + timestamp.Format("2006-01-02") + ".csv"
	level.Info(logger).Log("rotating", fileName)

	var err error
	fw.file, err = os.OpenFile(fileName, os.O_APPEND|os.O_WRONLY|os.O_CREATE, 0600)
	if err != nil {
		return err
	}

	fw.c = csv.NewWriter(fw.file)

	return nil
}

func (fw *FileWriter) Close() error {
	if fw.c != nil {
		fw.c.Flush()
	}

	if fw.file != nil {
		return fw.file.Close()
	}

	return nil
}

// number renders an absent (NaN) measurement as an empty CSV cell.
func number(v float64) string {
	if math.IsNaN(v) {
		return ""
	}
	return fmt.Sprint(v)
}

var (
	_ Writer = &DbWriter{}
	_ Writer = &FileWriter{}
)
