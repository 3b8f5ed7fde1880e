package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/hihighsh/glossary-app/internal/config"
)

// PasswordHeader carries the shared app password.
const PasswordHeader = "X-App-Password"

// PasswordGate rejects requests under prefix that do not present the
// configured shared password, either in X-App-Password or as the password
// of HTTP Basic auth. A bcrypt PasswordHash takes precedence over a plain
// Password. With neither configured the gate passes everything through.
func PasswordGate(cfg config.AuthConfig, prefix string) Middleware {
	if !cfg.Enabled() {
		return func(next http.Handler) http.Handler { return next }
	}
	check := plainChecker(cfg.Password)
	if cfg.PasswordHash != "" {
		check = bcryptChecker([]byte(cfg.PasswordHash))
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !strings.HasPrefix(r.URL.Path, prefix) || r.Method == http.MethodOptions {
				next.ServeHTTP(w, r)
				return
			}
			pw := extractPassword(r)
			if pw == "" || !check(pw) {
				w.Header().Set("WWW-Authenticate", `Basic realm="glossary"`)
				http.Error(w, "password incorrect", http.StatusUnauthorized)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func plainChecker(want string) func(string) bool {
	return func(got string) bool {
		return subtle.ConstantTimeCompare([]byte(got), []byte(want)) == 1
	}
}

func bcryptChecker(hash []byte) func(string) bool {
	return func(got string) bool {
		return bcrypt.CompareHashAndPassword(hash, []byte(got)) == nil
	}
}

func extractPassword(r *http.Request) string {
	if pw := r.Header.Get(PasswordHeader); pw != "" {
		return pw
	}
	if _, pw, ok := r.BasicAuth(); ok {
		return pw
	}
	return ""
}
