package entity

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTerminalByCode(t *testing.T) {
	req := require.New(t)

	for _, term := range AllTerminals() {
		got, err := TerminalByCode(term.Code())
		req.NoError(err)
		req.Equal(term, got)
	}

	_, err := TerminalByCode(5)
	req.ErrorIs(err, ErrUnknownTerminal)
}

func TestAllTerminals_ReturnsCopy(t *testing.T) {
	req := require.New(t)

	ts := AllTerminals()
	ts[0] = Terminal(99)
	req.Equal(TerminalWeb, AllTerminals()[0])
}

func TestListenerType_Accepts(t *testing.T) {
	req := require.New(t)

	req.True(ListenerAll.Accepts(ListenerPrivate))
	req.True(ListenerAll.Accepts(ListenerGroup))
	req.True(ListenerGroup.Accepts(ListenerGroup))
	req.False(ListenerGroup.Accepts(ListenerPrivate))
	req.False(ListenerPrivate.Accepts(ListenerGroup))
}
