package funge

type Stack struct {
	Data []uint8
}

func (s *Stack) Push(value uint8) {
	s.Data = append(s.Data, value)
}

// Pop removes the top value. An empty stack pops as zero.
func (s *Stack) Pop() (value uint8) {
	value = s.Peek()
	if !s.Empty() {
		s.Data = s.Data[:len(s.Data)-1]
	}
	return
}

func (s *Stack) Empty() bool {
	return len(s.Data) == 0
}

func (s *Stack) Len() int {
	return len(s.Data)
}

// Peek returns the top value, or zero for an empty stack.
func (s *Stack) Peek() (value uint8) {
	if s.Empty() {
		return
	}

	return s.Data[len(s.Data)-1]
}

func (s *Stack) Reset() {
	if len(s.Data) > 0 {
		s.Data = s.Data[:0]
	}
}
