package service

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestVerhoeffValid(t *testing.T) {
	t.Parallel()
	valid := []string{"234567890124", "999999999999", "412345678902"}
	for _, num := range valid {
		require.True(t, VerhoeffValid(num), num)
	}

	// single-digit corruption of the check digit
	require.False(t, VerhoeffValid("234567890125"))
	// adjacent transposition
	require.False(t, VerhoeffValid("324567890124"))
	// non-digits
	require.False(t, VerhoeffValid("23456789012x"))
}

func TestValidAadhar(t *testing.T) {
	t.Parallel()
	require.True(t, ValidAadhar("234567890124"))
	require.True(t, ValidAadhar("999999999999"))

	// leading 0/1 are not issued
	require.False(t, ValidAadhar("123456789012"))
	// wrong length
	require.False(t, ValidAadhar("23456789012"))
	require.False(t, ValidAadhar("2345678901244"))
	// bad checksum
	require.False(t, ValidAadhar("234567890120"))
}

func TestValidPAN(t *testing.T) {
	t.Parallel()
	require.True(t, ValidPAN("ABCDE1234F"))
	require.True(t, ValidPAN("ZZZZZ0000Z"))

	require.False(t, ValidPAN("abcde1234f"))
	require.False(t, ValidPAN("ABCD12345F"))
	require.False(t, ValidPAN("ABCDE1234"))
	require.False(t, ValidPAN("ABCDE12345"))
}
