package collection

import "strconv"

// Window is a half-open range [Start, End) into a sort-ordered collection.
type Window struct {
	Start int
	End   int
}

// NewWindow computes the window anchored at anchor over n elements.
// A negative vector covers |vector| elements ending at the anchor. A positive
// vector covers the anchor and the vector elements after it. The far edge is
// clamped to [0, n) for any vector, including math.MinInt and math.MaxInt.
func NewWindow(anchor, vector, n int) (Window, error) {
	if vector == 0 {
		return Window{}, invalid("vector must not be zero")
	}
	if anchor < 0 || anchor >= n {
		return Window{}, invalid("index %d is out of range [0, %d)", anchor, n)
	}

	if vector < 0 {
		start := 0
		if vector > -anchor-1 {
			start = anchor + vector + 1
		}
		return Window{Start: start, End: anchor + 1}, nil
	}

	end := n
	if vector < n-anchor-1 {
		end = anchor + vector + 1
	}
	return Window{Start: anchor, End: end}, nil
}

// Len is the number of elements the window covers.
func (w Window) Len() int {
	return w.End - w.Start
}

// windowRequest is the parsed form of the List query parameters.
type windowRequest struct {
	anchor     *int
	vector     int
	sortColumn string
}

func parseWindowRequest(s Schema, params map[string]string) (windowRequest, error) {
	req := windowRequest{vector: DefaultVector}

	sortKey := s.DefaultSort
	if v, ok := params[ParamSort]; ok {
		sortKey = v
	}
	col, err := s.SortColumn(sortKey)
	if err != nil {
		return req, err
	}
	req.sortColumn = col

	if v, ok := params[ParamVector]; ok {
		vector, err := strconv.Atoi(v)
		if err != nil {
			return req, invalid("vector must be an integer")
		}
		if vector == 0 {
			return req, invalid("vector must not be zero")
		}
		req.vector = vector
	}

	if v, ok := params[ParamIndex]; ok {
		anchor, err := strconv.Atoi(v)
		if err != nil {
			return req, invalid("index must be an integer")
		}
		req.anchor = &anchor
	}

	for k := range params {
		switch k {
		case ParamIndex, ParamVector, ParamSort:
		default:
			return req, invalid("unexpected parameter %q", k)
		}
	}

	return req, nil
}
