package reports

import "errors"

// ValidateCreateRequest checks required fields on a report submission.
func ValidateCreateRequest(req *CreateReportRequest) error {
	if req.ContractAddress == "" {
		return errors.New("contract address is required")
	}
	if len(req.Threats) == 0 {
		return errors.New("at least one threat type is required")
	}
	for _, t := range req.Threats {
		if t == "" {
			return errors.New("threat types cannot be empty")
		}
	}
	if req.Reporter == "" {
		return errors.New("reporter is required")
	}
	return nil
}
