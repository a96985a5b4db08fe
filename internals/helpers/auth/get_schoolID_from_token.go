// file: internals/helpers/auth/get_schoolID_from_token.go
package helper

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

/* ============================================
   Locals Keys (middleware should set these)
   ============================================ */

const (
	LocUserID         = "user_id"          // string UUID
	LocRolesGlobal    = "roles_global"     // []string
	LocActiveSchoolID = "active_school_id" // string UUID
)

var ErrNoSchoolID = errors.New("school_id not found in token")

/* ============================================
   Claim readers
   ============================================ */

func readJWTClaims(c *fiber.Ctx) jwt.MapClaims {
	if v := c.Locals("jwt_claims"); v != nil {
		if m, ok := v.(jwt.MapClaims); ok {
			return m
		}
	}
	return nil
}

// GetActiveSchoolIDFromToken returns the tenant the token is scoped to.
func GetActiveSchoolIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	if v := c.Locals(LocActiveSchoolID); v != nil {
		if s, ok := v.(string); ok {
			if id, err := uuid.Parse(strings.TrimSpace(s)); err == nil {
				return id, nil
			}
		}
	}
	// fallback: raw claim (when middleware variants only stash claims)
	if claims := readJWTClaims(c); claims != nil {
		if s, ok := claims["school_id"].(string); ok {
			if id, err := uuid.Parse(strings.TrimSpace(s)); err == nil {
				return id, nil
			}
		}
	}
	return uuid.Nil, ErrNoSchoolID
}

// GetSchoolIDFromToken is the common alias used by controllers.
func GetSchoolIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	return GetActiveSchoolIDFromToken(c)
}

func GetUserIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	if v := c.Locals(LocUserID); v != nil {
		if s, ok := v.(string); ok {
			if id, err := uuid.Parse(strings.TrimSpace(s)); err == nil {
				return id, nil
			}
		}
	}
	return uuid.Nil, errors.New("user_id not found in token")
}

func GetRolesGlobal(c *fiber.Ctx) []string {
	out := []string{}
	v := c.Locals(LocRolesGlobal)
	switch t := v.(type) {
	case []string:
		out = append(out, t...)
	case []any:
		for _, e := range t {
			if s, ok := e.(string); ok && strings.TrimSpace(s) != "" {
				out = append(out, strings.TrimSpace(s))
			}
		}
	}
	return out
}

func HasGlobalRole(c *fiber.Ctx, role string) bool {
	for _, r := range GetRolesGlobal(c) {
		if strings.EqualFold(r, role) {
			return true
		}
	}
	return false
}
