package reports

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidateCreateRequest(t *testing.T) {
	req := CreateReportRequest{
		ContractAddress: "0xAAA",
		Threats:         []string{"Phishing", "Scam"},
		Reporter:        "0x1",
	}
	require.NoError(t, ValidateCreateRequest(&req))

	require.Error(t, ValidateCreateRequest(&CreateReportRequest{
		Threats:  []string{"Phishing"},
		Reporter: "0x1",
	}))

	require.Error(t, ValidateCreateRequest(&CreateReportRequest{
		ContractAddress: "0xAAA",
		Threats:         []string{},
		Reporter:        "0x1",
	}))

	require.Error(t, ValidateCreateRequest(&CreateReportRequest{
		ContractAddress: "0xAAA",
		Threats:         []string{"Phishing", ""},
		Reporter:        "0x1",
	}))

	require.Error(t, ValidateCreateRequest(&CreateReportRequest{
		ContractAddress: "0xAAA",
		Threats:         []string{"Phishing"},
	}))
}
