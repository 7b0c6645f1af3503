// Package chat implements the public site's assistant widget: a small
// rule-based responder exposed over WebSocket with a plain POST fallback.
package chat

import (
	"strings"
)

// Rule maps trigger words to a canned reply. Matching is case-insensitive and
// substring-based; the first rule with a matching trigger wins, so order rules
// from specific to general.
type Rule struct {
	Triggers []string
	Reply    string
}

// Responder answers visitor messages from a fixed rule set. It holds no
// per-conversation state.
type Responder struct {
	rules    []Rule
	fallback string
}

// NewResponder creates a responder with the given rules and fallback reply.
func NewResponder(rules []Rule, fallback string) *Responder {
	return &Responder{rules: rules, fallback: fallback}
}

// Reply returns the answer for a visitor message. Empty or whitespace-only
// messages get the fallback.
func (r *Responder) Reply(message string) string {
	normalized := strings.ToLower(strings.TrimSpace(message))
	if normalized == "" {
		return r.fallback
	}
	for _, rule := range r.rules {
		for _, trigger := range rule.Triggers {
			if strings.Contains(normalized, trigger) {
				return rule.Reply
			}
		}
	}
	return r.fallback
}

// DefaultRules answers the questions visitors actually ask: service times,
// location, and how to reach someone.
func DefaultRules() []Rule {
	return []Rule{
		{
			Triggers: []string{"culto", "horário", "horario", "service", "schedule"},
			Reply:    "Os horários dos cultos estão na seção Programação do site. O culto principal é no domingo de manhã.",
		},
		{
			Triggers: []string{"endereço", "endereco", "localização", "localizacao", "onde", "address"},
			Reply:    "Nosso endereço está no rodapé do site, na seção Contato.",
		},
		{
			Triggers: []string{"ebd", "escola bíblica", "escola biblica"},
			Reply:    "A Escola Bíblica Dominical acontece aos domingos antes do culto. Fale com a secretaria para matrícula.",
		},
		{
			Triggers: []string{"contato", "telefone", "email", "e-mail", "falar"},
			Reply:    "Você encontra telefone e e-mail na seção Contato. Teremos prazer em falar com você.",
		},
		{
			Triggers: []string{"olá", "ola", "oi", "bom dia", "boa tarde", "boa noite", "hello", "hi"},
			Reply:    "Olá! Bem-vindo ao site da Adonai CCS. Como posso ajudar?",
		},
	}
}

// DefaultFallback is the reply for messages no rule matches.
const DefaultFallback = "Desculpe, não entendi. Posso ajudar com horários de culto, endereço, EBD ou contato."
