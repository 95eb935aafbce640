package handlers

import (
	"log"
	"net/http"
	"sync"

	"github.com/labstack/echo/v4"

	"github.com/Ankit-Samanta/college-admin-dashboard/models"
)

type DashboardHandler struct{}

func NewDashboardHandler() *DashboardHandler { return &DashboardHandler{} }

// GET /dashboard/counts
// The four counts are independent; a failed sub-count degrades to 0 and the
// response is still 200 with the remaining real numbers.
func (h *DashboardHandler) Counts(c echo.Context) error {
	type countQ struct {
		key   string
		model any
	}
	queries := []countQ{
		{"students", &models.Student{}},
		{"teachers", &models.Teacher{}},
		{"employees", &models.Employee{}},
		{"announcements", &models.Announcement{}},
	}

	counts := make(map[string]int64, len(queries))
	var (
		mu sync.Mutex
		wg sync.WaitGroup
	)
	for _, q := range queries {
		q := q
		wg.Add(1)
		go func() {
			defer wg.Done()
			var n int64
			if err := db(c).Model(q.model).Count(&n).Error; err != nil {
				log.Printf("dashboard: count %s failed: %v", q.key, err)
				n = 0
			}
			mu.Lock()
			counts[q.key] = n
			mu.Unlock()
		}()
	}
	wg.Wait()

	return c.JSON(http.StatusOK, counts)
}
