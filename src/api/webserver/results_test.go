package webserver

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"github.com/rand-lottery/backoffice/src/api/config"
	"github.com/rand-lottery/backoffice/src/api/social"
	"github.com/rand-lottery/backoffice/src/api/types"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, _ := db.DB()
	sqlDB.SetMaxOpenConns(1)
	if err := db.AutoMigrate(
		&types.Game{}, &types.Draw{}, &types.Result{},
		&types.ResultApproval{}, &types.Manager{}, &types.Setting{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	cfg := config.Config{JWTSecret: "test-secret"}
	channels := social.NewEmptyRegistry()
	channels.Register(social.NewTwitter())
	return New(cfg, db, nil, channels)
}

func do(t *testing.T, r *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), out); err != nil {
		t.Fatalf("decode response %s: %v", w.Body.String(), err)
	}
}

func signup(t *testing.T, r *gin.Engine, email string) string {
	t.Helper()
	w := do(t, r, http.MethodPost, "/v1/auth/signup", "", gin.H{
		"email":    email,
		"password": "sup3r-secret",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("signup status = %d body=%s", w.Code, w.Body.String())
	}
	var resp struct {
		AccessToken string `json:"access_token"`
	}
	decode(t, w, &resp)
	if resp.AccessToken == "" {
		t.Fatal("signup returned empty token")
	}
	return resp.AccessToken
}

func seedDrawAPI(t *testing.T, r *gin.Engine) uint {
	t.Helper()
	w := do(t, r, http.MethodPost, "/v1/games", "", gin.H{"name": "BINGO4", "description": "test"})
	if w.Code != http.StatusCreated {
		t.Fatalf("create game status = %d body=%s", w.Code, w.Body.String())
	}
	var game types.Game
	decode(t, w, &game)

	w = do(t, r, http.MethodPost, "/v1/draws", "", gin.H{
		"game_id": game.ID,
		"draw_at": "2025-03-14T19:30:00Z",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create draw status = %d body=%s", w.Code, w.Body.String())
	}
	var draw types.Draw
	decode(t, w, &draw)
	return draw.ID
}

func TestAuth(t *testing.T) {
	r := newTestRouter(t)
	signup(t, r, "ops@randlottery.com")

	t.Run("duplicate email rejected", func(t *testing.T) {
		w := do(t, r, http.MethodPost, "/v1/auth/signup", "", gin.H{
			"email":    "ops@randlottery.com",
			"password": "sup3r-secret",
		})
		if w.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400", w.Code)
		}
	})

	t.Run("login with valid credentials", func(t *testing.T) {
		w := do(t, r, http.MethodPost, "/v1/auth/login", "", gin.H{
			"email":    "ops@randlottery.com",
			"password": "sup3r-secret",
		})
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d body=%s", w.Code, w.Body.String())
		}
	})

	t.Run("login with wrong password", func(t *testing.T) {
		w := do(t, r, http.MethodPost, "/v1/auth/login", "", gin.H{
			"email":    "ops@randlottery.com",
			"password": "wrong-password",
		})
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("status = %d, want 401", w.Code)
		}
	})
}

func TestResultLifecycle(t *testing.T) {
	r := newTestRouter(t)
	token := signup(t, r, "ops@randlottery.com")
	drawID := seedDrawAPI(t, r)

	t.Run("duplicate numbers rejected", func(t *testing.T) {
		w := do(t, r, http.MethodPost, "/v1/results", "", gin.H{
			"draw_id":         drawID,
			"winning_numbers": "5,12,5",
		})
		if w.Code != http.StatusBadRequest {
			t.Fatalf("status = %d body=%s", w.Code, w.Body.String())
		}
	})

	t.Run("unknown draw is 404", func(t *testing.T) {
		w := do(t, r, http.MethodPost, "/v1/results", "", gin.H{
			"draw_id":         9999,
			"winning_numbers": "5,12,30",
		})
		if w.Code != http.StatusNotFound {
			t.Fatalf("status = %d, want 404", w.Code)
		}
	})

	var created types.Result
	t.Run("valid submission", func(t *testing.T) {
		w := do(t, r, http.MethodPost, "/v1/results", token, gin.H{
			"draw_id":         drawID,
			"winning_numbers": "5,12,30",
			"machine_numbers": []int{7, 8},
		})
		if w.Code != http.StatusCreated {
			t.Fatalf("status = %d body=%s", w.Code, w.Body.String())
		}
		decode(t, w, &created)
		if created.WinningNumbers != "5,12,30" {
			t.Errorf("winning numbers = %q", created.WinningNumbers)
		}
		if created.Status != types.StatusPendingReview {
			t.Errorf("status = %q", created.Status)
		}
		if created.SubmittedByID == nil {
			t.Errorf("authenticated submission must record the submitter")
		}
	})

	verifyPath := fmt.Sprintf("/v1/results/%d/verify", created.ID)

	t.Run("verify requires auth", func(t *testing.T) {
		w := do(t, r, http.MethodPatch, verifyPath, "", gin.H{"decision": "approved"})
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("status = %d, want 401", w.Code)
		}
	})

	t.Run("bad decision value", func(t *testing.T) {
		w := do(t, r, http.MethodPatch, verifyPath, token, gin.H{"decision": "maybe"})
		if w.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400", w.Code)
		}
	})

	t.Run("approve then reject", func(t *testing.T) {
		w := do(t, r, http.MethodPatch, verifyPath, token, gin.H{"decision": "approved"})
		if w.Code != http.StatusOK {
			t.Fatalf("approve status = %d body=%s", w.Code, w.Body.String())
		}
		var approved types.Result
		decode(t, w, &approved)
		if approved.Status != types.StatusApproved || !approved.Verified || approved.VerifiedAt == nil {
			t.Errorf("after approve: %+v", approved)
		}

		w = do(t, r, http.MethodPatch, verifyPath, token, gin.H{"decision": "rejected", "note": "re-check"})
		if w.Code != http.StatusOK {
			t.Fatalf("reject status = %d body=%s", w.Code, w.Body.String())
		}
		var rejected types.Result
		decode(t, w, &rejected)
		if rejected.Status != types.StatusChangesRequested || rejected.Verified || rejected.VerifiedAt != nil {
			t.Errorf("after reject: %+v", rejected)
		}
		if len(rejected.Approvals) != 2 {
			t.Errorf("approval history = %d entries, want 2", len(rejected.Approvals))
		}
	})

	t.Run("verify unknown result", func(t *testing.T) {
		w := do(t, r, http.MethodPatch, "/v1/results/9999/verify", token, gin.H{"decision": "approved"})
		if w.Code != http.StatusNotFound {
			t.Fatalf("status = %d, want 404", w.Code)
		}
	})
}

func TestSocialPost(t *testing.T) {
	r := newTestRouter(t)
	token := signup(t, r, "ops@randlottery.com")
	drawID := seedDrawAPI(t, r)

	w := do(t, r, http.MethodPost, "/v1/results", token, gin.H{
		"draw_id":         drawID,
		"winning_numbers": "5,12,30",
	})
	var created types.Result
	decode(t, w, &created)

	t.Run("missing result is 404", func(t *testing.T) {
		w := do(t, r, http.MethodPost, "/v1/social/post", token, gin.H{
			"result_id": 9999,
			"platforms": []string{"twitter"},
		})
		if w.Code != http.StatusNotFound {
			t.Fatalf("status = %d, want 404", w.Code)
		}
	})

	t.Run("per-platform outcomes, request order", func(t *testing.T) {
		w := do(t, r, http.MethodPost, "/v1/social/post", token, gin.H{
			"result_id": created.ID,
			"platforms": []string{"twitter", "unknown"},
		})
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d body=%s", w.Code, w.Body.String())
		}
		var outcomes []social.PostOutcome
		decode(t, w, &outcomes)
		if len(outcomes) != 2 {
			t.Fatalf("outcomes = %d, want 2", len(outcomes))
		}
		if outcomes[0].Platform != "twitter" || outcomes[0].Success {
			t.Errorf("twitter outcome = %+v", outcomes[0])
		}
		if outcomes[1].Platform != "unknown" || outcomes[1].Success {
			t.Errorf("unknown outcome = %+v", outcomes[1])
		}
	})
}
