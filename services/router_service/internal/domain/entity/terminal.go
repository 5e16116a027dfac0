package entity

import (
	"fmt"
	"slices"
)

// Terminal 终端类型，每个用户在每种终端上最多保持一条长连接
type Terminal int

const (
	TerminalWeb     Terminal = 0
	TerminalMobile  Terminal = 1
	TerminalDesktop Terminal = 2
)

var allTerminals = []Terminal{TerminalWeb, TerminalMobile, TerminalDesktop}

// AllTerminals 返回全部终端类型，顺序固定
func AllTerminals() []Terminal {
	return slices.Clone(allTerminals)
}

// TerminalByCode 根据终端编码查找终端类型
func TerminalByCode(code int) (Terminal, error) {
	t := Terminal(code)
	if !t.Valid() {
		return 0, fmt.Errorf("%w: %d", ErrUnknownTerminal, code)
	}
	return t, nil
}

// Code 终端编码，用于拼接在线状态 key
func (t Terminal) Code() int { return int(t) }

func (t Terminal) Valid() bool {
	return slices.Contains(allTerminals, t)
}

func (t Terminal) String() string {
	switch t {
	case TerminalWeb:
		return "web"
	case TerminalMobile:
		return "mobile"
	case TerminalDesktop:
		return "desktop"
	default:
		return fmt.Sprintf("terminal(%d)", int(t))
	}
}
