package handler

import (
	"flag"
	"net/http"
	"os"
	"testing"

	C "brokerbase/config"
	"brokerbase/model/model"
	"brokerbase/model/store"
	U "brokerbase/util"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

var testSetupErr error

// Handler tests drive the real store, so they need a live Postgres and
// skip when none is reachable.
func TestMain(m *testing.M) {
	env := flag.String("env", C.DEVELOPMENT, "")
	dbHost := flag.String("db_host", "localhost", "")
	dbPort := flag.Int("db_port", 5432, "")
	dbUser := flag.String("db_user", "brokerbase", "")
	dbName := flag.String("db_name", "brokerbase", "")
	dbPass := flag.String("db_pass", "", "")
	flag.Parse()

	gin.SetMode(gin.TestMode)

	config := &C.Configuration{
		AppName: "handler_test",
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
			&model.CrmDeal{},
			&model.DealStageHistory{},
		).Error
	}
	if testSetupErr != nil {
		log.WithError(testSetupErr).Warn("Postgres unavailable. Handler tests will be skipped.")
	}

	os.Exit(m.Run())
}

func skipWithoutDB(t *testing.T) {
	if testSetupErr != nil {
		t.Skipf("postgres unavailable: %v", testSetupErr)
	}
}

func createTestProject(t *testing.T) *model.Project {
	project, errCode := store.GetStore().CreateProject(&model.Project{
		Name: "test-" + U.RandomLowerAlphaNumString(10),
	})
	if errCode != http.StatusCreated {
		t.Fatalf("failed to create test project, code %d", errCode)
	}
	return project
}
