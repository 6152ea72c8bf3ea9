package services

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/jalexanderII/todo-railway/models"
)

const (
	maxTitleLength = 200

	// years time.Time can encode as RFC 3339
	minDateYear = 0
	maxDateYear = 9999
)

var validate = validator.New()

// dateLayouts are tried in order for string dates. Layouts without a zone are read as UTC.
var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02T15:04",
	"2006-01-02",
}

// Optional is a value together with whether the payload supplied it.
type Optional[T any] struct {
	Value T
	Set   bool
}

// Some returns a present Optional.
func Some[T any](v T) Optional[T] {
	return Optional[T]{Value: v, Set: true}
}

// ItemPatch holds the item fields a request supplied. Absent fields leave
// the item untouched.
type ItemPatch struct {
	Title       Optional[string]
	Description Optional[string]
	Date        Optional[time.Time]
	Done        Optional[bool]
}

// Apply overwrites exactly the fields that are set.
func (p ItemPatch) Apply(item *models.Item) {
	if p.Title.Set {
		item.Title = p.Title.Value
	}
	if p.Description.Set {
		item.Description = p.Description.Value
	}
	if p.Date.Set {
		item.Date = models.NormalizeTime(p.Date.Value)
	}
	if p.Done.Set {
		item.Done = p.Done.Value
	}
}

// DecodeItemPatch parses a JSON object body. A key counts as present when it
// appears with a non-null value; unknown keys such as "id" or "user" are
// ignored. An empty body is an empty patch.
func DecodeItemPatch(body []byte) (ItemPatch, error) {
	var patch ItemPatch
	verr := &ValidationError{}

	body = bytes.TrimSpace(body)
	if len(body) == 0 {
		return patch, nil
	}

	raw := map[string]json.RawMessage{}
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()
	if err := dec.Decode(&raw); err != nil {
		verr.add("body", "must be a JSON object")
		return patch, verr
	}

	if v, ok := present(raw, "title"); ok {
		var s string
		if err := json.Unmarshal(v, &s); err != nil {
			verr.add("title", "must be a string")
		} else if strings.TrimSpace(s) == "" {
			verr.add("title", "must not be blank")
		} else if err := validate.Var(s, "max="+strconv.Itoa(maxTitleLength)); err != nil {
			verr.add("title", "must be at most "+strconv.Itoa(maxTitleLength)+" characters")
		} else {
			patch.Title = Some(s)
		}
	}

	if v, ok := present(raw, "description"); ok {
		var s string
		if err := json.Unmarshal(v, &s); err != nil {
			verr.add("description", "must be a string")
		} else {
			patch.Description = Some(s)
		}
	}

	if v, ok := present(raw, "date"); ok {
		if t, err := parseDate(v); err != nil {
			verr.add("date", "must be an ISO-8601 date/time or epoch milliseconds")
		} else if y := t.UTC().Year(); y < minDateYear || y > maxDateYear {
			verr.add("date", "must fall between years "+strconv.Itoa(minDateYear)+" and "+strconv.Itoa(maxDateYear))
		} else {
			patch.Date = Some(t)
		}
	}

	if v, ok := present(raw, "done"); ok {
		if b, err := parseBool(v); err != nil {
			verr.add("done", "must be a boolean")
		} else {
			patch.Done = Some(b)
		}
	}

	return patch, verr.errOrNil()
}

// RequireForCreate checks the fields a new item cannot be stored without.
func (p ItemPatch) RequireForCreate() error {
	verr := &ValidationError{}
	if !p.Title.Set {
		verr.add("title", "is required")
	}
	if !p.Date.Set {
		verr.add("date", "is required")
	}
	return verr.errOrNil()
}

func present(raw map[string]json.RawMessage, key string) (json.RawMessage, bool) {
	v, ok := raw[key]
	if !ok || string(bytes.TrimSpace(v)) == "null" {
		return nil, false
	}
	return v, true
}

func parseDate(v json.RawMessage) (time.Time, error) {
	var s string
	if err := json.Unmarshal(v, &s); err == nil {
		s = strings.TrimSpace(s)
		var lastErr error
		for _, layout := range dateLayouts {
			t, err := time.Parse(layout, s)
			if err == nil {
				return t, nil
			}
			lastErr = err
		}
		return time.Time{}, lastErr
	}

	ms, err := integral(v)
	if err != nil {
		return time.Time{}, err
	}
	return time.UnixMilli(ms).UTC(), nil
}

func parseBool(v json.RawMessage) (bool, error) {
	var b bool
	if err := json.Unmarshal(v, &b); err == nil {
		return b, nil
	}

	var s string
	if err := json.Unmarshal(v, &s); err == nil {
		return strconv.ParseBool(strings.TrimSpace(s))
	}

	n, err := integral(v)
	if err != nil {
		return false, err
	}
	switch n {
	case 0:
		return false, nil
	case 1:
		return true, nil
	}
	return false, strconv.ErrSyntax
}

// integral reads a JSON number that has no fractional part.
func integral(v json.RawMessage) (int64, error) {
	var n json.Number
	if err := json.Unmarshal(v, &n); err != nil {
		return 0, err
	}
	if i, err := n.Int64(); err == nil {
		return i, nil
	}
	f, err := n.Float64()
	if err != nil {
		return 0, err
	}
	if f != math.Trunc(f) || math.Abs(f) > math.MaxInt64/2 {
		return 0, strconv.ErrRange
	}
	return int64(f), nil
}
