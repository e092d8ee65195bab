package hashing_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"commons/hashing"
)

func TestSHA1(t *testing.T) {
	// echo -n abc | openssl sha1 -binary | base64
	assert.Equal(t, "qZk+NkcGgWq6PiVxeFDCbJzQ2J0=", hashing.SHA1("abc"))
	assert.Equal(t, hashing.SHA1("abc"), hashing.SHA1("a", "b", "c"))
	assert.Equal(t, hashing.SHA1("x12"), hashing.SHA1("x", 1, 2))
}

func TestSHA256(t *testing.T) {
	assert.Equal(t, "ungWv48Bz+pBQUDeXa4iI7ADYaOWF3qctBD/YfIAFa0=", hashing.SHA256("abc"))
	assert.Equal(t, "47DEQpj8HBSa+/TImW+5JCeuQeRkm5NMpJWZG3hSuFU=", hashing.SHA256())
	assert.NotEqual(t, hashing.SHA256("abc"), hashing.SHA1("abc"))
}
