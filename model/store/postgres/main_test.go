package postgres

import (
	"flag"
	"net/http"
	"os"
	"testing"

	C "brokerbase/config"
	"brokerbase/model/model"
	U "brokerbase/util"

	log "github.com/sirupsen/logrus"
)

var testSetupErr error

// TestMain connects to a live Postgres. The prospect queries use LATERAL
// joins, so there is no in-memory substitute; tests skip when the
// database is unreachable.
func TestMain(m *testing.M) {
	env := flag.String("env", C.DEVELOPMENT, "")
	dbHost := flag.String("db_host", "localhost", "")
	dbPort := flag.Int("db_port", 5432, "")
	dbUser := flag.String("db_user", "brokerbase", "")
	dbName := flag.String("db_name", "brokerbase", "")
	dbPass := flag.String("db_pass", "", "")
	flag.Parse()

	config := &C.Configuration{
		AppName: "store_test",
		Env:     *env,
		DBInfo: C.DBConf{
			Host:     *dbHost,
			Port:     *dbPort,
			User:     *dbUser,
			Name:     *dbName,
			Password: *dbPass,
		},
	}

	testSetupErr = C.InitWithoutRedis(config)
	if testSetupErr == nil {
		testSetupErr = C.GetServices().Db.AutoMigrate(
			&model.Project{},
			&model.MasterProperty{},
			&model.Transaction{},
			&model.ImportBatch{},
			&model.ProspectList{},
			&model.ProspectListItem{},
		).Error
	}
	if testSetupErr != nil {
		log.WithError(testSetupErr).Warn("Postgres unavailable. Store tests will be skipped.")
	}

	os.Exit(m.Run())
}

func skipWithoutDB(t *testing.T) {
	if testSetupErr != nil {
		t.Skipf("postgres unavailable: %v", testSetupErr)
	}
}

func createTestProject(t *testing.T) *model.Project {
	pg := &Postgres{}
	project, errCode := pg.CreateProject(&model.Project{
		Name: "test-" + U.RandomLowerAlphaNumString(10),
	})
	if errCode != http.StatusCreated {
		t.Fatalf("failed to create test project, code %d", errCode)
	}
	return project
}
