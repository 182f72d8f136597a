package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"kdos-backend/internal/config"
	"kdos-backend/internal/models"
	"kdos-backend/internal/routes"
	"kdos-backend/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
	utils.Log.SetOutput(io.Discard)
	utils.Log.SetLevel(logrus.PanicLevel)
}

// newTestRouter points config.DB at a fresh in-memory database and returns
// the full router.
func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()

	db, err := config.Open("sqlite", ":memory:", logger.Silent)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := config.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	config.DB = db
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})

	utils.SetTokenSecret("test-secret")

	r := gin.New()
	routes.SetupRoutes(r, config.Config{
		CORSOrigin: "*",
		RateLimit:  1000,
		RateBurst:  1000,
	})
	return r
}

type request struct {
	method string
	path   string
	body   any
	token  string
}

func do(t *testing.T, r http.Handler, req request) *httptest.ResponseRecorder {
	t.Helper()

	var body io.Reader
	switch b := req.body.(type) {
	case nil:
	case string:
		body = bytes.NewBufferString(b)
	default:
		raw, err := json.Marshal(b)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		body = bytes.NewReader(raw)
	}

	httpReq := httptest.NewRequest(req.method, req.path, body)
	if body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	if req.token != "" {
		httpReq.Header.Set("Authorization", "Bearer "+req.token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httpReq)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode %q: %v", w.Body.String(), err)
	}
	return out
}

func expectStatus(t *testing.T, w *httptest.ResponseRecorder, want int) {
	t.Helper()
	if w.Code != want {
		t.Fatalf("expected status %d, got %d: %s", want, w.Code, w.Body.String())
	}
}

func tokenFor(t *testing.T, accountID uint, role models.Role) string {
	t.Helper()
	token, err := utils.GenerateToken(accountID, role.String())
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}
	return token
}

// Seed helpers write straight to the database.

func seedCustomer(t *testing.T, name string) models.Customer {
	t.Helper()
	c := models.Customer{CustomerName: name, Email: "koi@example.com", PhoneNumber: "0901"}
	if err := config.DB.Create(&c).Error; err != nil {
		t.Fatalf("seed customer: %v", err)
	}
	return c
}

func seedStaff(t *testing.T, name string) models.Staff {
	t.Helper()
	s := models.Staff{StaffName: name, Role: "Driver"}
	if err := config.DB.Create(&s).Error; err != nil {
		t.Fatalf("seed staff: %v", err)
	}
	return s
}

func seedKoi(t *testing.T, fishType string) models.KoiFish {
	t.Helper()
	k := models.KoiFish{FishType: fishType}
	if err := config.DB.Create(&k).Error; err != nil {
		t.Fatalf("seed koi: %v", err)
	}
	return k
}

func seedFish(t *testing.T, customerID, koiID uint, name string) models.FishProfile {
	t.Helper()
	f := models.FishProfile{Name: name, Weight: 1.2, KoiFishID: koiID, CustomerID: customerID}
	if err := config.DB.Create(&f).Error; err != nil {
		t.Fatalf("seed fish: %v", err)
	}
	return f
}

var orderSeq atomic.Int64

func seedOrder(t *testing.T, customerID uint, status models.OrderStatus, totalCost float64) models.Order {
	t.Helper()
	o := models.Order{
		Code:           fmt.Sprintf("KDOS-T%07d", orderSeq.Add(1)),
		CustomerID:     customerID,
		SenderName:     "Sender",
		RecipientName:  "Recipient",
		TotalCost:      totalCost,
		PaymentStatus:  models.PaymentPending,
		DeliveryStatus: status,
	}
	if err := config.DB.Create(&o).Error; err != nil {
		t.Fatalf("seed order: %v", err)
	}
	return o
}

func orderInput(customerID uint) map[string]any {
	return map[string]any{
		"customerId":           customerID,
		"senderName":           "Lan",
		"senderAddress":        "12 Le Loi, Hue",
		"senderPhoneNumber":    "0905000111",
		"recipientName":        "Tuan",
		"recipientAddress":     "3 Nguyen Hue, HCMC",
		"recipientEmail":       "tuan@example.com",
		"recipientPhoneNumber": "0906000222",
		"quantity":             2,
		"totalWeight":          3.5,
		"totalCost":            450000,
		"paymentMethod":        "CASH",
	}
}
