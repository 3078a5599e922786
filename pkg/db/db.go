// Package db is the applications database client. It wraps database/sql
// with the MySQL driver and exposes the two queries the tools need.
package db

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/go-sql-driver/mysql"

	"github.com/harvardinformatics/module-query/pkg/api"
	"github.com/harvardinformatics/module-query/pkg/api/constants"
	mqerr "github.com/harvardinformatics/module-query/pkg/errors"
	"github.com/harvardinformatics/module-query/pkg/util"
	utillog "github.com/harvardinformatics/module-query/pkg/util/log"
)

var log = utillog.StderrLog

// Client is the interface to the applications database.
type Client interface {
	// FetchBuildReports returns build_report rows whose build name (or,
	// with fullText, whole report text) matches the search term, limited
	// to the given build flavors, ordered by application and build order.
	FetchBuildReports(search string, flavors []string, fullText bool) ([]api.BuildReportRecord, error)

	// FetchActivations returns the name and activation command of builds
	// matching the search term, limited to the given build flavors.
	FetchActivations(search string, flavors []string) ([]api.Activation, error)

	// Close releases the underlying connections.
	Close() error
}

type client struct {
	db *sql.DB
}

// New connects to the applications database described by config. The
// connection is retried a few times before giving up, since the database
// host drops connections while under load.
func New(config *api.Config) (Client, error) {
	dsn := DSN(config)
	log.V(3).Infof("Connecting to %s", util.RedactDSNPassword(dsn))

	var lastErr error
	for attempt := 0; attempt < constants.MaxConnectionAttempts; attempt++ {
		if attempt > 0 {
			time.Sleep(constants.ConnectionWait)
		}
		db, err := sql.Open("mysql", dsn)
		if err != nil {
			lastErr = err
			continue
		}
		if err := db.Ping(); err != nil {
			lastErr = err
			db.Close()
			log.V(3).Infof("Connection attempt %d failed: %v", attempt+1, err)
			continue
		}
		return &client{db: db}, nil
	}
	return nil, mqerr.NewConnectionError(config.Host, lastErr)
}

// NewFromDB wraps an existing database handle. Used by tests.
func NewFromDB(db *sql.DB) Client {
	return &client{db: db}
}

// DSN assembles the MySQL data source name for the config.
func DSN(config *api.Config) string {
	cfg := mysql.NewConfig()
	cfg.Net = "tcp"
	cfg.Addr = config.Host
	cfg.DBName = config.Database
	cfg.User = config.User
	cfg.Passwd = config.Password
	return cfg.FormatDSN()
}

func (c *client) FetchBuildReports(search string, flavors []string, fullText bool) ([]api.BuildReportRecord, error) {
	column := "build_name"
	if fullText {
		column = "report_text"
	}
	query := fmt.Sprintf(
		"SELECT app_name, build_name, build_stack_name, build_order, report_text "+
			"FROM build_report WHERE %s LIKE ? AND build_stack_name IN (%s) "+
			"ORDER BY app_name, build_order",
		column, placeholders(len(flavors)))

	rows, err := c.db.Query(query, buildArgs(search, flavors)...)
	if err != nil {
		return nil, mqerr.NewQueryError(err)
	}
	defer rows.Close()

	records := []api.BuildReportRecord{}
	for rows.Next() {
		record := api.BuildReportRecord{}
		if err := rows.Scan(&record.AppName, &record.BuildName, &record.BuildStackName, &record.BuildOrder, &record.ReportText); err != nil {
			return nil, mqerr.NewQueryError(err)
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, mqerr.NewQueryError(err)
	}
	log.V(2).Infof("Fetched %d build reports for search %q", len(records), search)
	return records, nil
}

func (c *client) FetchActivations(search string, flavors []string) ([]api.Activation, error) {
	query := fmt.Sprintf(
		"SELECT b.name, b.activation FROM build b "+
			"INNER JOIN build_stack bs ON bs.id = b.build_stack_id "+
			"WHERE b.name LIKE ? AND bs.name IN (%s)",
		placeholders(len(flavors)))

	rows, err := c.db.Query(query, buildArgs(search, flavors)...)
	if err != nil {
		return nil, mqerr.NewQueryError(err)
	}
	defer rows.Close()

	activations := []api.Activation{}
	for rows.Next() {
		activation := api.Activation{}
		if err := rows.Scan(&activation.Name, &activation.Activation); err != nil {
			return nil, mqerr.NewQueryError(err)
		}
		activations = append(activations, activation)
	}
	if err := rows.Err(); err != nil {
		return nil, mqerr.NewQueryError(err)
	}
	log.V(2).Infof("Fetched %d activations for search %q", len(activations), search)
	return activations, nil
}

func (c *client) Close() error {
	return c.db.Close()
}

// placeholders returns "?,?,..." for an IN clause of the given length.
func placeholders(count int) string {
	return strings.Join(strings.Split(strings.Repeat("?", count), ""), ",")
}

// buildArgs assembles the query arguments: the LIKE term followed by the
// flavor names.
func buildArgs(search string, flavors []string) []interface{} {
	args := make([]interface{}, 0, len(flavors)+1)
	args = append(args, "%"+search+"%")
	for _, flavor := range flavors {
		args = append(args, flavor)
	}
	return args
}
