package service

// QuarantineServiceWrapper defines middleware composition for
// QuarantineService. Implementations wrap an existing QuarantineService to
// add behavior such as validation or metrics.
type QuarantineServiceWrapper interface {
	Wrap(QuarantineService) QuarantineService // returns a decorated QuarantineService
}
