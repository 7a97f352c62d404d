package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"georeport/report"
)

// GetReport returns the session's current report snapshot.
func GetReport(store *report.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		data, ok := store.Snapshot(SessionID(c))
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
			return
		}
		c.JSON(http.StatusOK, data)
	}
}

// PutReport replaces the session's report with the submitted one. The whole
// object is swapped at once; there are no partial updates.
func PutReport(store *report.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var data report.ReportData
		if err := c.ShouldBindJSON(&data); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid report payload: " + err.Error()})
			return
		}
		normalizeReport(&data)
		if !store.Replace(SessionID(c), data) {
			c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
			return
		}
		c.JSON(http.StatusOK, data)
	}
}

// normalizeReport coerces incoming values the editor may send loosely:
// legacy CSS-class color names become tokens and rows without an id get one.
func normalizeReport(data *report.ReportData) {
	for i := range data.Recommendations {
		rec := &data.Recommendations[i]
		if strings.TrimSpace(rec.ID) == "" {
			rec.ID = uuid.NewString()
		}
		rec.PriorityColor = report.ParseColorToken(string(rec.PriorityColor))
		rec.RowColor = report.ParseColorToken(string(rec.RowColor))
	}
}
