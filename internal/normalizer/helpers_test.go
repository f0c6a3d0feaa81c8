package normalizer

import "encoding/json"

func decodeJSON(body string, v any) error {
	return json.Unmarshal([]byte(body), v)
}
