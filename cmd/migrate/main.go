// Command migrate brings the database schema up to date, waiting for the
// database to come up first since the migrate container typically races the
// postgres container on startup.
package main

import (
	"database/sql"
	"time"

	"bigtwo-server/pkg/db"

	"github.com/sirupsen/logrus"
)

const dbWaitTimeout = time.Second * 10

func main() {
	waitForDB()
	db.Migrate()
	logrus.Info("migrations complete")
}

func waitForDB() {
	deadline := time.Now().Add(dbWaitTimeout)
	for {
		if tryConnect() != nil {
			return
		}

		if time.Now().After(deadline) {
			logrus.Fatal("could not connect to database")
		}

		time.Sleep(time.Millisecond * 500)
	}
}

func tryConnect() (dbh *sql.DB) {
	defer func() { _ = recover() }()
	return db.Instance()
}
