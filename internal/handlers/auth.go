package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"os"
	"strings"
	"time"
	"unicode"

	"wearable-backend/pkg/utils"

	"github.com/golang-jwt/jwt/v5"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token string `json:"token"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

// Login is the demo auth flow: any email/password combination succeeds and
// gets the admin role. The display name is the title-cased local part of the
// email. When APP_JWT_SECRET is configured a signed HS256 token is issued
// (credentials are still never checked); otherwise the fixed demo token is
// returned.
func Login() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Invalid request body", http.StatusBadRequest)
			return
		}

		log.Printf("🔐 Login attempt for: %s", req.Email)

		name := titleCase(localPart(req.Email))
		token := "demo-token"

		if jwtSecret := os.Getenv("APP_JWT_SECRET"); jwtSecret != "" {
			claims := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
				"email": req.Email,
				"name":  name,
				"role":  "admin",
				"iat":   time.Now().Unix(),
				"exp":   time.Now().Add(7 * 24 * time.Hour).Unix(),
			})
			signed, err := claims.SignedString([]byte(jwtSecret))
			if err != nil {
				log.Println("❌ Failed to create token")
				http.Error(w, "Failed to create token", http.StatusInternalServerError)
				return
			}
			token = signed
		}

		log.Printf("✅ Login successful: %s (admin)", req.Email)
		utils.JSON(w, http.StatusOK, LoginResponse{
			Token: token,
			Name:  name,
			Role:  "admin",
		})
	}
}

func localPart(email string) string {
	if i := strings.Index(email, "@"); i >= 0 {
		return email[:i]
	}
	return email
}

// titleCase upper-cases the first letter of every word, where a word starts
// after any non-letter ("budi.santoso" -> "Budi.Santoso").
func titleCase(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	prevLetter := false
	for _, r := range s {
		if unicode.IsLetter(r) {
			if prevLetter {
				b.WriteRune(unicode.ToLower(r))
			} else {
				b.WriteRune(unicode.ToUpper(r))
			}
			prevLetter = true
		} else {
			b.WriteRune(r)
			prevLetter = false
		}
	}
	return b.String()
}
