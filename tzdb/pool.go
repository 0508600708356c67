package tzdb

import "sort"

// stringPool assigns small indices to the strings referenced by a
// container, ordered by descending usage frequency so the most common
// values (zone names like "UTC", "LMT") get the smallest varint7 indices.
type stringPool struct {
	strings []string
	index   map[string]int
}

func newStringPool(freq map[string]int) *stringPool {
	keys := make([]string, 0, len(freq))
	for k := range freq {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if freq[keys[i]] != freq[keys[j]] {
			return freq[keys[i]] > freq[keys[j]]
		}
		return keys[i] < keys[j]
	})

	p := &stringPool{strings: keys, index: make(map[string]int, len(keys))}
	for i, s := range keys {
		p.index[s] = i
	}
	return p
}

func (p *stringPool) indexOf(s string) int { return p.index[s] }

func (p *stringPool) at(i int) (string, error) {
	if i < 0 || i >= len(p.strings) {
		return "", ErrMalformedStream
	}
	return p.strings[i], nil
}

func (p *stringPool) encode() []byte {
	var buf []byte
	buf = putVarint7(buf, uint64(len(p.strings)))
	for _, s := range p.strings {
		buf = putString(buf, s)
	}
	return buf
}

func decodeStringPool(payload []byte) (*stringPool, error) {
	count, used, err := readVarint7(payload)
	if err != nil {
		return nil, err
	}
	payload = payload[used:]

	strings := make([]string, 0, count)
	for i := uint64(0); i < count; i++ {
		s, n, err := readString(payload)
		if err != nil {
			return nil, err
		}
		strings = append(strings, s)
		payload = payload[n:]
	}

	p := &stringPool{strings: strings, index: make(map[string]int, len(strings))}
	for i, s := range strings {
		p.index[s] = i
	}
	return p, nil
}

func (p *stringPool) atIndexVarint(data []byte) (string, int, error) {
	idx, used, err := readVarint7(data)
	if err != nil {
		return "", 0, err
	}
	s, err := p.at(int(idx))
	if err != nil {
		return "", 0, err
	}
	return s, used, nil
}
