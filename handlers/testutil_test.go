package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/Ankit-Samanta/college-admin-dashboard/config"
	"github.com/Ankit-Samanta/college-admin-dashboard/database"
	"github.com/Ankit-Samanta/college-admin-dashboard/middlewares"
	"github.com/Ankit-Samanta/college-admin-dashboard/models"
	"github.com/Ankit-Samanta/college-admin-dashboard/routes"
)

const testSecret = "test-secret"

// newTestServer swaps the package-level DB for an in-memory SQLite store
// and wires the full route table, so tests exercise auth, role gating and
// handlers together.
func newTestServer(t *testing.T) *echo.Echo {
	e, _ := newTestServerWithUploads(t)
	return e
}

func newTestServerWithUploads(t *testing.T) (*echo.Echo, string) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("test db pool: %v", err)
	}
	// a single conn keeps every query on the same in-memory database
	sqlDB.SetMaxOpenConns(1)

	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	database.DB = db

	cfg := &config.Config{JWTSecret: testSecret, UploadDir: t.TempDir()}

	e := echo.New()
	e.Use(echomw.Recover())
	routes.Register(e, cfg)
	return e, cfg.UploadDir
}

func token(t *testing.T, sub uint, role, name, email string) string {
	t.Helper()
	claims := middlewares.Claims{
		Sub:   sub,
		Role:  role,
		Name:  name,
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("sign test token: %v", err)
	}
	return tok
}

func adminToken(t *testing.T) string {
	return token(t, 1, "admin", "Administrator", "admin@college.edu")
}

func teacherToken(t *testing.T) string {
	return token(t, 2, "teacher", "Mr. Smith", "smith@college.edu")
}

func doJSON(t *testing.T, e *echo.Echo, method, path, bearer string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if bearer != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+bearer)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, out any) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), out); err != nil {
		t.Fatalf("decode response %q: %v", rec.Body.String(), err)
	}
}

func hashPassword(t *testing.T, pwd string) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(pwd), bcrypt.DefaultCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	return string(h)
}

func seedStudent(t *testing.T, name, roll, email, dept, year, pwd string) models.Student {
	t.Helper()
	s := models.Student{
		Name: name, Roll: roll, Email: email,
		Department: dept, Year: year,
		PasswordHash: hashPassword(t, pwd),
	}
	if err := database.DB.Create(&s).Error; err != nil {
		t.Fatalf("seed student: %v", err)
	}
	return s
}

func seedAdmin(t *testing.T, email, pwd string) models.User {
	t.Helper()
	u := models.User{
		Username: "admin", Email: email,
		PasswordHash: hashPassword(t, pwd),
		Role:         "admin", Name: "Administrator",
	}
	if err := database.DB.Create(&u).Error; err != nil {
		t.Fatalf("seed admin: %v", err)
	}
	return u
}

func seedTeacher(t *testing.T, name, email, dept, pwd string) models.Teacher {
	t.Helper()
	tc := models.Teacher{
		Name: name, Email: email, Phone: "555-0000",
		Department: dept, PasswordHash: hashPassword(t, pwd),
	}
	if err := database.DB.Create(&tc).Error; err != nil {
		t.Fatalf("seed teacher: %v", err)
	}
	return tc
}
