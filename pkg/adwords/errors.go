package adwords

import "fmt"

// Fault is a SOAP fault returned by the API.
type Fault struct {
	Code    string `xml:"faultcode"`
	Message string `xml:"faultstring"`
}

// Error implements the error interface.
func (f *Fault) Error() string {
	return fmt.Sprintf("adwords: SOAP fault %s: %s", f.Code, f.Message)
}
