package handler

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	mid "brokerbase/middleware"
	"brokerbase/model/model"
	"brokerbase/model/store"
	U "brokerbase/util"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestUpdateDealStageHandlerDefaultsChangedBy(t *testing.T) {
	skipWithoutDB(t)

	project := createTestProject(t)
	deal, errCode := store.GetStore().CreateDeal(project.ID, &model.CrmDeal{
		Name:  "Lakeline disposition",
		Stage: model.DealStageProspecting,
	})
	assert.Equal(t, http.StatusCreated, errCode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPut, "/api/deals/"+deal.ID+"/stage",
		bytes.NewBufferString(`{"stage": "qualification", "notes": "intro call done"}`))
	c.Params = gin.Params{{Key: "deal_id", Value: deal.ID}}
	U.SetScope(c, mid.SCOPE_PROJECT_ID, project.ID)
	U.SetScope(c, mid.SCOPE_PROJECT_NAME, project.Name)

	UpdateDealStageHandler(c)
	assert.Equal(t, http.StatusAccepted, w.Code)

	history, errCode := store.GetStore().GetDealStageHistory(project.ID, deal.ID)
	assert.Equal(t, http.StatusFound, errCode)
	if assert.Len(t, history, 1) {
		assert.Equal(t, model.DealStageProspecting, history[0].FromStage)
		assert.Equal(t, model.DealStageQualification, history[0].ToStage)
		// With no changed_by in the body, the project scope fills it in.
		assert.Equal(t, project.Name, history[0].ChangedBy)
	}
}
