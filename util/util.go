package util

import (
	"math/rand"
	"time"

	"github.com/google/uuid"
)

var randSource = rand.New(rand.NewSource(time.Now().UnixNano()))

const letterBytes = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"
const lowerAlphaNumBytes = "abcdefghijklmnopqrstuvwxyz0123456789"

// RandomString returns a random string of alphabets of given length.
func RandomString(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = letterBytes[randSource.Intn(len(letterBytes))]
	}
	return string(b)
}

// RandomLowerAlphaNumString returns a random lowercase alphanumeric
// string, safe for use on URLs and keys.
func RandomLowerAlphaNumString(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = lowerAlphaNumBytes[randSource.Intn(len(lowerAlphaNumBytes))]
	}
	return string(b)
}

func GetUUID() string {
	return uuid.New().String()
}

func IsValidUUID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

// StringValueIn checks for existence of value in list.
func StringValueIn(value string, list []string) bool {
	for _, v := range list {
		if v == value {
			return true
		}
	}
	return false
}

func MinInt(a int, b int) int {
	if a <= b {
		return a
	}
	return b
}

func MaxInt(a int, b int) int {
	if a >= b {
		return a
	}
	return b
}
