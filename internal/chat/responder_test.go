package chat

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResponder_Reply_MatchesTriggerCaseInsensitively(t *testing.T) {
	r := NewResponder(DefaultRules(), DefaultFallback)

	reply := r.Reply("Qual o HORÁRIO do culto?")
	assert.Contains(t, reply, "Programação")
}

func TestResponder_Reply_FirstMatchingRuleWins(t *testing.T) {
	r := NewResponder([]Rule{
		{Triggers: []string{"culto de oração"}, Reply: "quarta às 19h"},
		{Triggers: []string{"culto"}, Reply: "domingo de manhã"},
	}, DefaultFallback)

	assert.Equal(t, "quarta às 19h", r.Reply("quando é o culto de oração?"))
	assert.Equal(t, "domingo de manhã", r.Reply("quando é o culto?"))
}

func TestResponder_Reply_UnknownMessage_GetsFallback(t *testing.T) {
	r := NewResponder(DefaultRules(), DefaultFallback)

	assert.Equal(t, DefaultFallback, r.Reply("qual a previsão do tempo?"))
}

func TestResponder_Reply_EmptyMessage_GetsFallback(t *testing.T) {
	r := NewResponder(DefaultRules(), DefaultFallback)

	assert.Equal(t, DefaultFallback, r.Reply("   "))
}

func TestResponder_Reply_Greeting(t *testing.T) {
	r := NewResponder(DefaultRules(), DefaultFallback)

	assert.Contains(t, r.Reply("olá"), "Bem-vindo")
}
