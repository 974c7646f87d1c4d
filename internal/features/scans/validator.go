package scans

import "errors"

// ValidateCreateRequest checks required fields on a scan submission.
func ValidateCreateRequest(req *CreateScanRequest) error {
	if req.ContractAddress == "" {
		return errors.New("contract address is required")
	}
	if req.IsContract == nil {
		return errors.New("isContract is required")
	}
	if req.IsVerified == nil {
		return errors.New("isVerified is required")
	}
	if req.IsScam == nil {
		return errors.New("isScam is required")
	}
	if req.ScannedBy == "" {
		return errors.New("scannedBy is required")
	}
	return nil
}
