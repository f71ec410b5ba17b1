package site

import (
	"cmp"
	"encoding/json"
	"fmt"
	"slices"
	"strings"
)

// Service is an entry of the services section.
type Service struct {
	ID               string `json:"id"`
	Slug             string `json:"slug"`
	Title            string `json:"title"`
	ShortDescription string `json:"shortDescription"`
	Icon             string `json:"icon"`
	Order            int    `json:"order"`
}

var services = []Service{
	{ID: "1", Slug: "cftv", Title: "Sistema de CFTV", ShortDescription: "Monitoramento em tempo real com câmeras de alta resolução", Icon: "Camera", Order: 1},
	{ID: "2", Slug: "alarme", Title: "Alarme Residencial e Empresarial", ShortDescription: "Proteção inteligente com sensores modernos", Icon: "Bell", Order: 2},
	{ID: "3", Slug: "cerca-eletrica", Title: "Cerca Elétrica", ShortDescription: "Barreiras físicas e eletrônicas de alta eficiência", Icon: "Zap", Order: 3},
	{ID: "4", Slug: "controle-acesso", Title: "Controle de Acesso", ShortDescription: "Gestão automatizada de entradas e saídas", Icon: "Fingerprint", Order: 4},
	{ID: "5", Slug: "interfones", Title: "Interfones e Videoporteiros", ShortDescription: "Comunicação prática e segura", Icon: "Phone", Order: 5},
	{ID: "6", Slug: "manutencao", Title: "Manutenção Preventiva e Corretiva", ShortDescription: "Garantia de funcionamento contínuo dos equipamentos", Icon: "Wrench", Order: 6},
}

// Services returns a copy of the catalogue sorted by Order.
func Services() []Service {
	out := slices.Clone(services)
	slices.SortStableFunc(out, func(a, b Service) int {
		return cmp.Compare(a.Order, b.Order)
	})
	return out
}

// ServiceBySlug finds a service by its slug.
func ServiceBySlug(slug string) (Service, bool) {
	i := slices.IndexFunc(services, func(s Service) bool { return s.Slug == slug })
	if i < 0 {
		return Service{}, false
	}
	return services[i], true
}

// RenderedService is a service with its icon resolved.
type RenderedService struct {
	Service
	ResolvedIcon Icon `json:"resolvedIcon"`
}

// Render resolves the icon of each service, falling back for unknown keys.
func Render(list []Service) []RenderedService {
	out := make([]RenderedService, len(list))
	for i, s := range list {
		out[i] = RenderedService{Service: s, ResolvedIcon: IconFor(s.Icon)}
	}
	return out
}

// ExportServices returns the rendered services as indented JSON.
func ExportServices(list []Service) ([]byte, error) {
	data, err := json.MarshalIndent(Render(list), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to convert services to JSON: %w", err)
	}
	return data, nil
}

// FormatServices renders the catalogue as text, one service per line.
func FormatServices(list []RenderedService) string {
	var sb strings.Builder
	for _, s := range list {
		fmt.Fprintf(&sb, "%s  %-34s %s\n", s.ResolvedIcon.Glyph, s.Title, s.ShortDescription)
	}
	return sb.String()
}
