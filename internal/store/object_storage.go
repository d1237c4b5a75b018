package store

import "github.com/MKhiriev/quarantine-vault/internal/config"

// chunkKeys splits keys into consecutive slices of at most size elements.
// A non-positive size falls back to [config.DefaultBatchDeleteLimit].
func chunkKeys(keys []string, size int) [][]string {
	if size <= 0 {
		size = config.DefaultBatchDeleteLimit
	}

	chunks := make([][]string, 0, (len(keys)+size-1)/size)
	for start := 0; start < len(keys); start += size {
		end := min(start+size, len(keys))
		chunks = append(chunks, keys[start:end])
	}
	return chunks
}
