// core/report/errors.go
package report

// ConsistencyError reports input tables that disagree about a taxon pair:
// a pair diverging above the strain level, a pair present in both
// orientations, or a taxon the taxonomy table does not know. Detail says
// what went wrong; Key names the offending taxa combo.
type ConsistencyError struct {
	Key    string
	Detail string
}

func (e *ConsistencyError) Error() string {
	return e.Detail + ": " + e.Key
}
