package sysmap

import "testing"

// FuzzParse feeds arbitrary documents to the system parser.
// Run with: go test -fuzz=FuzzParse -fuzztime=30s ./pkg/sysmap/
func FuzzParse(f *testing.F) {
	// Valid systems
	f.Add([]byte(sampleYAML), false)
	f.Add([]byte(`{"name":"Sol","planets":[{"name":"Earth","x":100,"y":0,"radius":50}]}`), true)
	f.Add([]byte(`{"name":"Sol","jumps":[{"target":"Alpha","x":9000,"y":0,"usable":false}]}`), true)

	// Edge cases
	f.Add([]byte(``), false)
	f.Add([]byte(`{}`), true)
	f.Add([]byte(`null`), true)
	f.Add([]byte(`name: x
planets:
  - name: p
    radius: -1
`), false)
	f.Add([]byte(`name: [1, 2`), false)

	f.Fuzz(func(t *testing.T, data []byte, asJSON bool) {
		ext := ".yaml"
		if asJSON {
			ext = ".json"
		}
		s, err := Parse(data, ext)
		if err != nil {
			return
		}

		// A system that parsed must survive a round trip.
		out, err := s.Marshal()
		if err != nil {
			t.Fatalf("Marshal: %v", err)
		}
		if _, err := Parse(out, ".yaml"); err != nil {
			t.Fatalf("Reparse: %v\n%s", err, out)
		}
	})
}
