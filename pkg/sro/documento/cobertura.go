package documento

import (
	"github.com/msto63/sro/foundation/core/validation"
	"github.com/msto63/sro/foundation/utils/mathx"
	"github.com/msto63/sro/foundation/utils/slicex"
	"github.com/msto63/sro/foundation/utils/timex"
	"github.com/msto63/sro/foundation/utils/validationx"
	"github.com/msto63/sro/pkg/sro"
)

// Coverage codes and flags with rule meaning
const (
	CoberturaOutras = 999 // coverage not listed by the regulator
	SublimiteSim    = 1   // LMI is a sublimit; the coverage carries no premium
)

var coberturaConditionals = validation.ConditionalTable{
	{
		Name:    "outrasDescricaoWhenOutras",
		When:    validation.Equals("codigo", CoberturaOutras),
		Field:   "outrasDescricao",
		Rule:    validationx.Required,
		Message: "is required when codigo is 999",
	},
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

// CoberturaFields are the attributes of a coverage
type CoberturaFields struct {
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
	CoberturaPrincipal               *int           `json:"coberturaPrincipal,omitempty" yaml:"coberturaPrincipal,omitempty"`
	CoberturaCaracteristica          *int           `json:"coberturaCaracteristica" yaml:"coberturaCaracteristica"`
	CoberturaTipo                    *int           `json:"coberturaTipo" yaml:"coberturaTipo"`
	TipoRisco                        *int           `json:"tipoRisco,omitempty" yaml:"tipoRisco,omitempty"`
	ValorPremio                      *mathx.Decimal `json:"valorPremio" yaml:"valorPremio"`
	ValorPremioReal                  *mathx.Decimal `json:"valorPremioReal" yaml:"valorPremioReal"`
	IOF                              *mathx.Decimal `json:"iof,omitempty" yaml:"iof,omitempty"`
	Custo                            *mathx.Decimal `json:"custo,omitempty" yaml:"custo,omitempty"`
	CustoReal                        *mathx.Decimal `json:"custoReal,omitempty" yaml:"custoReal,omitempty"`

	Franquias                 []Franquia                  `json:"-" yaml:"-" toml:"-"`
	BeneficiariosPorCobertura []BeneficiariosPorCobertura `json:"-" yaml:"-" toml:"-"`
}

// Cobertura is a validated coverage
type Cobertura struct {
	f CoberturaFields
}

// NewCobertura validates f and returns an immutable Cobertura
func NewCobertura(f CoberturaFields) (Cobertura, error) {
	if err := ValidateCobertura(f).Reject("Cobertura"); err != nil {
		return Cobertura{}, err
	}
	return Cobertura{f: sro.Detach(f)}, nil
}

// ValidateCobertura reports every rule f violates
func ValidateCobertura(f CoberturaFields) validation.ValidationResult {
	p := validation.NewPlan("Cobertura")
	p.Required("grupoRamo", f.GrupoRamo).
		Required("codigo", f.Codigo).
		Required("coberturaInternaSeguradora", f.CoberturaInternaSeguradora).
		Required("numeroProcesso", f.NumeroProcesso).
		Required("limiteMaximoIndenizacao", f.LimiteMaximoIndenizacao).
		Required("limiteMaximoIndenizacaoReal", f.LimiteMaximoIndenizacaoReal).
		Required("dataInicioCobertura", f.DataInicioCobertura).
		Required("dataTerminoCobertura", f.DataTerminoCobertura).
		Required("coberturaCaracteristica", f.CoberturaCaracteristica).
		Required("coberturaTipo", f.CoberturaTipo).
		Required("valorPremio", f.ValorPremio).
		Required("valorPremioReal", f.ValorPremioReal)

	p.Domain("codigo", f.Codigo, validationx.Range(1, 999)).
		Domain("limiteMaximoIndenizacao", f.LimiteMaximoIndenizacao, validationx.NonNegative).
		Domain("limiteMaximoIndenizacaoReal", f.LimiteMaximoIndenizacaoReal, validationx.NonNegative).
		Domain("limiteMaximoIndenizacaoSublimite", f.LimiteMaximoIndenizacaoSublimite, validationx.Range(1, 2)).
		Domain("coberturaPrincipal", f.CoberturaPrincipal, validationx.Range(1, 2)).
		Domain("coberturaCaracteristica", f.CoberturaCaracteristica, validationx.Range(1, 3)).
		Domain("coberturaTipo", f.CoberturaTipo, validationx.Range(1, 6)).
		Domain("tipoRisco", f.TipoRisco, validationx.Range(1, 2)).
		Domain("valorPremio", f.ValorPremio, validationx.NonNegative).
		Domain("valorPremioReal", f.ValorPremioReal, validationx.NonNegative).
		Domain("iof", f.IOF, validationx.NonNegative).
		Domain("custo", f.Custo, validationx.NonNegative).
		Domain("custoReal", f.CustoReal, validationx.NonNegative)

	p.Size("grupoRamo", f.GrupoRamo, validationx.Length(4)).
		Size("outrasDescricao", f.OutrasDescricao, validationx.MaxLength(500)).
		Size("coberturaInternaSeguradora", f.CoberturaInternaSeguradora, validationx.MaxLength(50)).
		Size("numeroProcesso", f.NumeroProcesso, validationx.MaxLength(50)).
		Size("limiteMaximoIndenizacao", f.LimiteMaximoIndenizacao, validationx.Amount).
		Size("limiteMaximoIndenizacaoReal", f.LimiteMaximoIndenizacaoReal, validationx.Amount).
		Size("valorPremio", f.ValorPremio, validationx.Amount).
		Size("valorPremioReal", f.ValorPremioReal, validationx.Amount)

	p.Ordering("dataTerminoCobertura", f.DataTerminoCobertura,
		validationx.OnOrAfter("dataTerminoCobertura", "dataInicioCobertura", f.DataInicioCobertura)).
		Conditionals(coberturaConditionals, validation.Values{
			"codigo":                           f.Codigo,
			"outrasDescricao":                  f.OutrasDescricao,
			"limiteMaximoIndenizacaoSublimite": f.LimiteMaximoIndenizacaoSublimite,
			"valorPremio":                      f.ValorPremio,
			"valorPremioReal":                  f.ValorPremioReal,
		})
	return p.Validate()
}

// Fields returns a copy of the validated attributes
func (c Cobertura) Fields() CoberturaFields { return sro.Detach(c.f) }

// GrupoRamo returns the line-of-business group
func (c Cobertura) GrupoRamo() string { return c.f.GrupoRamo }

// Codigo returns the regulator's coverage code
func (c Cobertura) Codigo() int { return *c.f.Codigo }

// ValorPremio returns the coverage premium
func (c Cobertura) ValorPremio() mathx.Decimal { return *c.f.ValorPremio }

// Franquias returns the deductibles of the coverage
func (c Cobertura) Franquias() slicex.View[Franquia] { return slicex.Freeze(c.f.Franquias) }

// BeneficiariosPorCobertura returns the beneficiaries bound to the coverage
func (c Cobertura) BeneficiariosPorCobertura() slicex.View[BeneficiariosPorCobertura] {
	return slicex.Freeze(c.f.BeneficiariosPorCobertura)
}

// ===============================
// Franquia
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

// FranquiaFields are the attributes of a deductible
type FranquiaFields struct {
	FranquiaTipo      *int           `json:"franquiaTipo" yaml:"franquiaTipo"`
	TipoDescricao     string         `json:"tipoDescricao,omitempty" yaml:"tipoDescricao,omitempty"`
	FranquiaValor     *mathx.Decimal `json:"franquiaValor,omitempty" yaml:"franquiaValor,omitempty"`
	FranquiaDescricao string         `json:"franquiaDescricao,omitempty" yaml:"franquiaDescricao,omitempty"`
}

// Franquia is a validated deductible
type Franquia struct {
	f FranquiaFields
}

// NewFranquia validates f and returns an immutable Franquia
func NewFranquia(f FranquiaFields) (Franquia, error) {
	if err := ValidateFranquia(f).Reject("Franquia"); err != nil {
		return Franquia{}, err
	}
	return Franquia{f: sro.Detach(f)}, nil
}

// ValidateFranquia reports every rule f violates
func ValidateFranquia(f FranquiaFields) validation.ValidationResult {
	return validation.NewPlan("Franquia").
		Required("franquiaTipo", f.FranquiaTipo).
		Domain("franquiaTipo", f.FranquiaTipo, validationx.Range(1, 99)).
		Domain("franquiaValor", f.FranquiaValor, validationx.NonNegative).
		Size("tipoDescricao", f.TipoDescricao, validationx.MaxLength(1000)).
		Size("franquiaValor", f.FranquiaValor, validationx.Amount).
		Size("franquiaDescricao", f.FranquiaDescricao, validationx.MaxLength(500)).
		Conditionals(franquiaConditionals, validation.Values{
			"franquiaTipo":  f.FranquiaTipo,
			"tipoDescricao": f.TipoDescricao,
		}).
		Validate()
}

// Fields returns a copy of the validated attributes
func (fr Franquia) Fields() FranquiaFields { return sro.Detach(fr.f) }

// ===============================
// BeneficiariosPorCobertura
// ===============================

// BeneficiariosPorCoberturaFields bind a beneficiary to a coverage
type BeneficiariosPorCoberturaFields struct {
	GrupoRamo           string `json:"grupoRamo" yaml:"grupoRamo"`
	IdentificadorObjeto string `json:"identificadorObjeto" yaml:"identificadorObjeto"`
	CodigoInterno       string `json:"codigoInterno" yaml:"codigoInterno"`
}

// BeneficiariosPorCobertura is a validated coverage beneficiary binding
type BeneficiariosPorCobertura struct {
	f BeneficiariosPorCoberturaFields
}

// NewBeneficiariosPorCobertura validates f and returns an immutable binding
func NewBeneficiariosPorCobertura(f BeneficiariosPorCoberturaFields) (BeneficiariosPorCobertura, error) {
	if err := ValidateBeneficiariosPorCobertura(f).Reject("BeneficiariosPorCobertura"); err != nil {
		return BeneficiariosPorCobertura{}, err
	}
	return BeneficiariosPorCobertura{f: f}, nil
}

// ValidateBeneficiariosPorCobertura reports every rule f violates
func ValidateBeneficiariosPorCobertura(f BeneficiariosPorCoberturaFields) validation.ValidationResult {
	return validation.NewPlan("BeneficiariosPorCobertura").
		Required("grupoRamo", f.GrupoRamo).
		Required("identificadorObjeto", f.IdentificadorObjeto).
		Required("codigoInterno", f.CodigoInterno).
		Size("grupoRamo", f.GrupoRamo, validationx.Length(4)).
		Size("identificadorObjeto", f.IdentificadorObjeto, validationx.MaxLength(50)).
		Size("codigoInterno", f.CodigoInterno, validationx.MaxLength(50)).
		Validate()
}

// Fields returns the validated attributes
func (b BeneficiariosPorCobertura) Fields() BeneficiariosPorCoberturaFields { return b.f }
