package places

import "fmt"

// FetchError is returned for any failed provider call: transport errors,
// timeouts, and non-success provider statuses. Callers in the pipeline
// collapse it to an empty value; it exists so the failure reason stays
// available for logging and tests.
type FetchError struct {
	Op     string // "nearby_search", "place_details", "geocode", ...
	Status string // provider-reported status, empty for transport failures
	Err    error
}

func (e *FetchError) Error() string {
	if e.Status != "" {
		return fmt.Sprintf("places: %s: provider status %q", e.Op, e.Status)
	}
	return fmt.Sprintf("places: %s: %v", e.Op, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }
