package utility

import (
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/labstack/echo/v4"
)

// GetRealIP returns the caller's address, preferring proxy headers over the
// socket peer. It is the identifier for per-client rate limiting.
func GetRealIP(c echo.Context) string {
	// 1. X-Forwarded-For may be a list: "client, proxy1, proxy2"
	if xff := c.Request().Header.Get("X-Forwarded-For"); xff != "" {
		ips := strings.Split(xff, ",")
		return strings.TrimSpace(ips[0])
	}

	// 2. X-Real-IP, set by nginx and most tunnels
	if xRealIP := c.Request().Header.Get("X-Real-IP"); xRealIP != "" {
		return xRealIP
	}

	// 3. Direct peer
	return c.RealIP()
}

// ParseIntParam parses a query parameter, returning def when it is empty or
// not a non-negative integer.
func ParseIntParam(s string, def int) int {
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return def
	}
	return n
}

func UUIDToPgtype(id uuid.UUID) pgtype.UUID {
	return pgtype.UUID{Bytes: id, Valid: true}
}

func PgtypeUUIDToString(pgtypeUUID pgtype.UUID) (string, error) {
	if !pgtypeUUID.Valid {
		return "", fmt.Errorf("invalid UUID")
	}

	id, err := uuid.FromBytes(pgtypeUUID.Bytes[:])
	if err != nil {
		return "", fmt.Errorf("failed to parse UUID: %w", err)
	}

	return id.String(), nil
}

// NumericLimit is the exclusive magnitude bound of a NUMERIC(5,1) column.
const NumericLimit = 10000.0

// FloatToNumeric stores f with one decimal place, the precision of every
// BMI the engine reports. Values that would not fit NUMERIC(5,1) after
// rounding are rejected.
func FloatToNumeric(f float64) (pgtype.Numeric, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return pgtype.Numeric{}, fmt.Errorf("numeric: %v is not finite", f)
	}
	if math.Abs(f) >= NumericLimit {
		return pgtype.Numeric{}, fmt.Errorf("numeric: %v out of range for NUMERIC(5,1)", f)
	}
	scaled := int64(f*10 + copySign(0.5, f))
	if math.Abs(float64(scaled)) >= NumericLimit*10 {
		return pgtype.Numeric{}, fmt.Errorf("numeric: %v out of range for NUMERIC(5,1)", f)
	}
	return pgtype.Numeric{Int: big.NewInt(scaled), Exp: -1, Valid: true}, nil
}

func NumericToFloat(n pgtype.Numeric) float64 {
	if !n.Valid {
		return 0
	}
	f, err := n.Float64Value()
	if err != nil || !f.Valid {
		return 0
	}
	return f.Float64
}

func copySign(v, sign float64) float64 {
	if sign < 0 {
		return -v
	}
	return v
}
