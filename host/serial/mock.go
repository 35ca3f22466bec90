package serial

// MockPort implements Port for testing.
type MockPort struct {
	ReadData  []byte
	ReadErr   error
	WriteData []byte
	WriteErr  error
	Closed    bool
	Flushes   int

	// ReadFunc allows custom read behavior for complex tests
	ReadFunc func(p []byte) (int, error)
}

// Read returns scripted data. An exhausted mock returns 0 bytes with a nil
// error, mimicking a native port poll timeout on an idle link.
func (m *MockPort) Read(p []byte) (int, error) {
	if m.ReadFunc != nil {
		return m.ReadFunc(p)
	}
	if m.ReadErr != nil {
		return 0, m.ReadErr
	}
	n := copy(p, m.ReadData)
	m.ReadData = m.ReadData[n:]
	return n, nil
}

func (m *MockPort) Write(p []byte) (int, error) {
	if m.WriteErr != nil {
		return 0, m.WriteErr
	}
	m.WriteData = append(m.WriteData, p...)
	return len(p), nil
}

func (m *MockPort) Close() error {
	m.Closed = true
	return nil
}

// Flush counts the call; scripted responses stay queued across flushes.
func (m *MockPort) Flush() error {
	m.Flushes++
	return nil
}
