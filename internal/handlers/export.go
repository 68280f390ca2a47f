package handlers

import (
	"encoding/csv"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"contract-flow/internal/database"
	"contract-flow/internal/middleware"
	"contract-flow/internal/models"
	"contract-flow/internal/workflow"
	"contract-flow/pkg/logger"
)

// ExportContracts streams the caller-visible contracts as CSV.
func (h *ContractHandler) ExportContracts(c *gin.Context) {
	actor, _ := middleware.CurrentActor(c)

	filter := database.ContractFilter{Status: c.Query("status")}
	if !workflow.PermissionsFor(actor.Role).CanViewAll {
		filter.CreatedBy = &actor.UserID
	}

	contracts, err := database.ListContracts(filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	filename := fmt.Sprintf("contracts-%s.csv", time.Now().Format("2006-01-02"))
	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Status(http.StatusOK)

	if err := writeContractsCSV(c.Writer, contracts); err != nil {
		// headers are already sent, nothing left to do but log
		logger.Error(c.Request.Context(), "csv export failed", "error", err)
	}
}

func writeContractsCSV(w io.Writer, contracts []models.Contract) error {
	cw := csv.NewWriter(w)

	header := []string{"Title", "Type", "Status", "Priority", "Department", "Created By", "Start Date", "End Date", "Value", "Created At"}
	if err := cw.Write(header); err != nil {
		return err
	}

	for _, ct := range contracts {
		department := ""
		if ct.Department != nil {
			department = ct.Department.Name
		}
		creator := ct.CreatedBy.String()
		if ct.Creator != nil && ct.Creator.FullName != "" {
			creator = ct.Creator.FullName
		}
		value := ""
		if ct.Value != nil {
			value = fmt.Sprintf("%.2f", *ct.Value)
		}

		row := []string{
			ct.Title,
			ct.ContractType,
			string(ct.Status),
			string(ct.Priority),
			department,
			creator,
			formatDate(ct.StartDate),
			formatDate(ct.EndDate),
			value,
			ct.CreatedAt.Format("2006-01-02"),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

func formatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("2006-01-02")
}
