package kv

// Memory is a map-backed Store for tests and throwaway sessions.
type Memory struct {
	m map[string][]byte
}

func NewMemory() *Memory {
	return &Memory{m: make(map[string][]byte)}
}

func (s *Memory) Get(key string) ([]byte, bool, error) {
	v, ok := s.m[key]
	return v, ok, nil
}

func (s *Memory) Set(key string, value []byte) error {
	s.m[key] = append([]byte(nil), value...)
	return nil
}

func (s *Memory) Delete(key string) error {
	delete(s.m, key)
	return nil
}

func (s *Memory) Reset() error {
	s.m = make(map[string][]byte)
	return nil
}

func (s *Memory) Close() error { return nil }
