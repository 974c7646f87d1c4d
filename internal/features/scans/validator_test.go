package scans

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func boolPtr(b bool) *bool { return &b }

func TestValidateCreateRequest(t *testing.T) {
	req := CreateScanRequest{
		ContractAddress: "0xAAA",
		IsContract:      boolPtr(true),
		IsVerified:      boolPtr(false),
		IsScam:          boolPtr(false),
		ScannedBy:       "0x1",
	}
	require.NoError(t, ValidateCreateRequest(&req))

	// Explicit false is valid; only a missing flag fails
	missing := req
	missing.IsContract = nil
	require.Error(t, ValidateCreateRequest(&missing))

	missing = req
	missing.IsVerified = nil
	require.Error(t, ValidateCreateRequest(&missing))

	missing = req
	missing.IsScam = nil
	require.Error(t, ValidateCreateRequest(&missing))

	missing = req
	missing.ContractAddress = ""
	require.Error(t, ValidateCreateRequest(&missing))

	missing = req
	missing.ScannedBy = ""
	require.Error(t, ValidateCreateRequest(&missing))
}
