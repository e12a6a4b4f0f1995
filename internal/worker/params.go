package worker

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"urlget/internal/domain"
)

// ReadParams decodes the engine's parameter object. When the engine passes
// a file path argument the object is read from that file, otherwise it is
// read from stdin.
func ReadParams(args []string, stdin io.Reader) (domain.Params, error) {
	var params domain.Params

	reader := stdin
	if len(args) > 0 {
		file, err := os.Open(args[0])
		if err != nil {
			return params, fmt.Errorf("opening parameter file: %w", err)
		}
		defer file.Close()
		reader = file
	}

	dec := json.NewDecoder(reader)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&params); err != nil {
		return params, fmt.Errorf("decoding parameters: %w", err)
	}
	return params, nil
}
