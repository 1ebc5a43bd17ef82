package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalName(t *testing.T) {
	assert.Equal(t, "sinhagad fort", CanonicalName("  Sinhagad   Fort "))
	assert.Equal(t, "shaniwar wada", CanonicalName("SHANIWAR WADA"))
	assert.Equal(t, "", CanonicalName("   "))
	assert.Equal(t, CanonicalName("Dagadusheth Halwai Ganapati Temple"),
		CanonicalName("dagadusheth  halwai ganapati temple"))
}

func TestSafeFloat(t *testing.T) {
	assert.Equal(t, 4.5, SafeFloat(4.5, 0))
	assert.Equal(t, 4.0, SafeFloat(4, 0))
	assert.Equal(t, 3.2, SafeFloat("3.2", 0))
	assert.Equal(t, 3.2, SafeFloat(" 3.2 ", 0))
	assert.Equal(t, 9.9, SafeFloat("not-a-number", 9.9))
	assert.Equal(t, 9.9, SafeFloat(nil, 9.9))
	assert.Equal(t, 9.9, SafeFloat([]string{"x"}, 9.9))
}

func TestSafeString(t *testing.T) {
	assert.Equal(t, "hello", SafeString("  hello "))
	assert.Equal(t, "", SafeString(42))
	assert.Equal(t, "", SafeString(nil))
}
