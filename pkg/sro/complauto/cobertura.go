package complauto

import (
	"github.com/msto63/sro/foundation/core/validation"
	"github.com/msto63/sro/foundation/utils/mathx"
	"github.com/msto63/sro/foundation/utils/timex"
	"github.com/msto63/sro/foundation/utils/validationx"
	"github.com/msto63/sro/pkg/sro"
)

// SublimiteSim flags an LMI that is a sublimit; such coverages carry no premium
const SublimiteSim = 1

var coberturaConditionals = validation.ConditionalTable{
	{
		Name:  "valorPremioZeroWhenSublimite",
		When:  validation.Equals("limiteMaximoIndenizacaoSublimite", SublimiteSim),
		Field: "valorPremio",
		Rule:  validationx.EqualsZero,
	},
	{
		Name:  "valorPremioRealZeroWhenSublimite",
		When:  validation.Equals("limiteMaximoIndenizacaoSublimite", SublimiteSim),
		Field: "valorPremioReal",
		Rule:  validationx.EqualsZero,
	},
}

// CoberturaAutomovelFields are the attributes of a motor coverage
type CoberturaAutomovelFields struct {
	GrupoRamo                        string         `json:"grupoRamo" yaml:"grupoRamo"`
	Codigo                           *int           `json:"codigo" yaml:"codigo"`
	OutrasDescricao                  string         `json:"outrasDescricao,omitempty" yaml:"outrasDescricao,omitempty"`
	CoberturaInternaSeguradora       string         `json:"coberturaInternaSeguradora" yaml:"coberturaInternaSeguradora"`
	NumeroProcesso                   string         `json:"numeroProcesso" yaml:"numeroProcesso"`
	LimiteMaximoIndenizacao          *mathx.Decimal `json:"limiteMaximoIndenizacao" yaml:"limiteMaximoIndenizacao"`
	LimiteMaximoIndenizacaoReal      *mathx.Decimal `json:"limiteMaximoIndenizacaoReal" yaml:"limiteMaximoIndenizacaoReal"`
	LimiteMaximoIndenizacaoSublimite *int           `json:"limiteMaximoIndenizacaoSublimite,omitempty" yaml:"limiteMaximoIndenizacaoSublimite,omitempty"`
	DataInicioCobertura              *timex.Date    `json:"dataInicioCobertura" yaml:"dataInicioCobertura"`
	DataTerminoCobertura             *timex.Date    `json:"dataTerminoCobertura" yaml:"dataTerminoCobertura"`
	CoberturaPrincipal               *int           `json:"coberturaPrincipal" yaml:"coberturaPrincipal"`
	CoberturaCaracteristica          *int           `json:"coberturaCaracteristica" yaml:"coberturaCaracteristica"`
	CoberturaTipo                    *int           `json:"coberturaTipo" yaml:"coberturaTipo"`
	ValorPremio                      *mathx.Decimal `json:"valorPremio" yaml:"valorPremio"`
	ValorPremioReal                  *mathx.Decimal `json:"valorPremioReal" yaml:"valorPremioReal"`
	IOF                              *mathx.Decimal `json:"iof,omitempty" yaml:"iof,omitempty"`
	Custo                            *mathx.Decimal `json:"custo,omitempty" yaml:"custo,omitempty"`
	TipoIndenizacao                  *int           `json:"tipoIndenizacao,omitempty" yaml:"tipoIndenizacao,omitempty"`
	PercentualIndenizacaoParcial     *mathx.Decimal `json:"percentualIndenizacaoParcial,omitempty" yaml:"percentualIndenizacaoParcial,omitempty"`
	PercentualLmi                    *mathx.Decimal `json:"percentualLmi,omitempty" yaml:"percentualLmi,omitempty"`
	DiasCobertura                    *int           `json:"diasCobertura,omitempty" yaml:"diasCobertura,omitempty"`
	CoberturaVinculada               *int           `json:"coberturaVinculada,omitempty" yaml:"coberturaVinculada,omitempty"`
}

// CoberturaAutomovel is a validated motor coverage
type CoberturaAutomovel struct {
	f CoberturaAutomovelFields
}

// NewCoberturaAutomovel validates f and returns an immutable CoberturaAutomovel
func NewCoberturaAutomovel(f CoberturaAutomovelFields) (CoberturaAutomovel, error) {
	if err := ValidateCoberturaAutomovel(f).Reject("CoberturaAutomovel"); err != nil {
		return CoberturaAutomovel{}, err
	}
	return CoberturaAutomovel{f: sro.Detach(f)}, nil
}

// ValidateCoberturaAutomovel reports every rule f violates
func ValidateCoberturaAutomovel(f CoberturaAutomovelFields) validation.ValidationResult {
	p := validation.NewPlan("CoberturaAutomovel")
	p.Required("grupoRamo", f.GrupoRamo).
		Required("codigo", f.Codigo).
		Required("coberturaInternaSeguradora", f.CoberturaInternaSeguradora).
		Required("numeroProcesso", f.NumeroProcesso).
		Required("limiteMaximoIndenizacao", f.LimiteMaximoIndenizacao).
		Required("limiteMaximoIndenizacaoReal", f.LimiteMaximoIndenizacaoReal).
		Required("dataInicioCobertura", f.DataInicioCobertura).
		Required("dataTerminoCobertura", f.DataTerminoCobertura).
		Required("coberturaPrincipal", f.CoberturaPrincipal).
		Required("coberturaCaracteristica", f.CoberturaCaracteristica).
		Required("coberturaTipo", f.CoberturaTipo).
		Required("valorPremio", f.ValorPremio).
		Required("valorPremioReal", f.ValorPremioReal)

	p.Domain("codigo", f.Codigo, validationx.Range(1, 99999)).
		Domain("limiteMaximoIndenizacao", f.LimiteMaximoIndenizacao, validationx.NonNegative).
		Domain("limiteMaximoIndenizacaoReal", f.LimiteMaximoIndenizacaoReal, validationx.NonNegative).
		Domain("limiteMaximoIndenizacaoSublimite", f.LimiteMaximoIndenizacaoSublimite, validationx.Range(1, 2)).
		Domain("coberturaPrincipal", f.CoberturaPrincipal, validationx.Range(1, 2)).
		Domain("coberturaCaracteristica", f.CoberturaCaracteristica, validationx.Range(1, 3)).
		Domain("coberturaTipo", f.CoberturaTipo, validationx.Range(1, 5)).
		Domain("valorPremio", f.ValorPremio, validationx.NonNegative).
		Domain("valorPremioReal", f.ValorPremioReal, validationx.NonNegative).
		Domain("iof", f.IOF, validationx.NonNegative).
		Domain("custo", f.Custo, validationx.NonNegative).
		Domain("tipoIndenizacao", f.TipoIndenizacao, validationx.OneOf(1, 2, sro.Outros)).
		Domain("percentualIndenizacaoParcial", f.PercentualIndenizacaoParcial, validationx.NonNegative).
		Domain("percentualLmi", f.PercentualLmi, validationx.NonNegative).
		Domain("coberturaVinculada", f.CoberturaVinculada, validationx.OneOf(1, 2, sro.Outros))

	p.Size("grupoRamo", f.GrupoRamo, validationx.Length(4)).
		Size("outrasDescricao", f.OutrasDescricao, validationx.MaxLength(500)).
		Size("coberturaInternaSeguradora", f.CoberturaInternaSeguradora, validationx.MaxLength(50)).
		Size("numeroProcesso", f.NumeroProcesso, validationx.MaxLength(50)).
		Size("limiteMaximoIndenizacao", f.LimiteMaximoIndenizacao, validationx.Amount).
		Size("limiteMaximoIndenizacaoReal", f.LimiteMaximoIndenizacaoReal, validationx.Amount).
		Size("valorPremio", f.ValorPremio, validationx.Amount).
		Size("valorPremioReal", f.ValorPremioReal, validationx.Amount).
		Size("percentualIndenizacaoParcial", f.PercentualIndenizacaoParcial, validationx.Percentage).
		Size("percentualLmi", f.PercentualLmi, validationx.Percentage).
		Size("diasCobertura", f.DiasCobertura, validationx.MaxDigits(4))

	p.Ordering("dataTerminoCobertura", f.DataTerminoCobertura,
		validationx.OnOrAfter("dataTerminoCobertura", "dataInicioCobertura", f.DataInicioCobertura)).
		Conditionals(coberturaConditionals, validation.Values{
			"limiteMaximoIndenizacaoSublimite": f.LimiteMaximoIndenizacaoSublimite,
			"valorPremio":                      f.ValorPremio,
			"valorPremioReal":                  f.ValorPremioReal,
		})
	return p.Validate()
}

// Fields returns a copy of the validated attributes
func (c CoberturaAutomovel) Fields() CoberturaAutomovelFields { return sro.Detach(c.f) }

// Codigo returns the regulator's coverage code
func (c CoberturaAutomovel) Codigo() int { return *c.f.Codigo }

// ===============================
// FranquiaAuto
// ===============================

var franquiaConditionals = validation.ConditionalTable{
	{
		Name:    "tipoDescricaoWhenOutros",
		When:    validation.Equals("franquiaTipo", sro.Outros),
		Field:   "tipoDescricao",
		Rule:    validationx.Required,
		Message: "is required when franquiaTipo is 99",
	},
}

// FranquiaAutoFields are the attributes of a motor deductible
type FranquiaAutoFields struct {
	FranquiaTipo                *int           `json:"franquiaTipo" yaml:"franquiaTipo"`
	TipoDescricao               string         `json:"tipoDescricao,omitempty" yaml:"tipoDescricao,omitempty"`
	FranquiaValor               *mathx.Decimal `json:"franquiaValor,omitempty" yaml:"franquiaValor,omitempty"`
	FranquiaDescricao           string         `json:"franquiaDescricao,omitempty" yaml:"franquiaDescricao,omitempty"`
	FranquiaIndenizacaoIntegral *int           `json:"franquiaIndenizacaoIntegral,omitempty" yaml:"franquiaIndenizacaoIntegral,omitempty"`
}

// FranquiaAuto is a validated motor deductible
type FranquiaAuto struct {
	f FranquiaAutoFields
}

// NewFranquiaAuto validates f and returns an immutable FranquiaAuto
func NewFranquiaAuto(f FranquiaAutoFields) (FranquiaAuto, error) {
	err := validation.NewPlan("FranquiaAuto").
		Required("franquiaTipo", f.FranquiaTipo).
		Domain("franquiaTipo", f.FranquiaTipo, validationx.OneOf(1, 2, 3, 4, 5, sro.Outros)).
		Domain("franquiaValor", f.FranquiaValor, validationx.NonNegative).
		Domain("franquiaIndenizacaoIntegral", f.FranquiaIndenizacaoIntegral, validationx.Range(1, 2)).
		Size("tipoDescricao", f.TipoDescricao, validationx.MaxLength(1000)).
		Size("franquiaDescricao", f.FranquiaDescricao, validationx.MaxLength(500)).
		Conditionals(franquiaConditionals, validation.Values{
			"franquiaTipo":  f.FranquiaTipo,
			"tipoDescricao": f.TipoDescricao,
		}).
		Validate().
		Reject("FranquiaAuto")
	if err != nil {
		return FranquiaAuto{}, err
	}
	return FranquiaAuto{f: sro.Detach(f)}, nil
}

// Fields returns a copy of the validated attributes
func (fr FranquiaAuto) Fields() FranquiaAutoFields { return sro.Detach(fr.f) }
