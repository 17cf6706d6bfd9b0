package documento

import (
	"github.com/msto63/sro/foundation/core/validation"
	"github.com/msto63/sro/foundation/utils/mathx"
	"github.com/msto63/sro/foundation/utils/slicex"
	"github.com/msto63/sro/foundation/utils/timex"
	"github.com/msto63/sro/foundation/utils/validationx"
	"github.com/msto63/sro/pkg/sro"
)

// ===============================
// ObjetoSegurado
// ===============================

var objetoSeguradoConditionals = validation.ConditionalTable{
	{
		Name:    "descricaoTipoWhenOutros",
		When:    validation.Equals("tipo", sro.Outros),
		Field:   "descricaoTipo",
		Rule:    validationx.Required,
		Message: "is required when tipo is 99",
	},
	{
		Name:    "valorWhenTangible",
		When:    validation.Between("tipo", 1, 3),
		Field:   "valor",
		Rule:    validationx.Required,
		Message: "is required when tipo is 1, 2 or 3",
	},
	{
		Name:    "valorRealWhenTangible",
		When:    validation.Between("tipo", 1, 3),
		Field:   "valorReal",
		Rule:    validationx.Required,
		Message: "is required when tipo is 1, 2 or 3",
	},
	{
		Name:    "dataInicioWhenTangible",
		When:    validation.Between("tipo", 1, 3),
		Field:   "dataInicio",
		Rule:    validationx.Required,
		Message: "is required when tipo is 1, 2 or 3",
	},
}

// ObjetoSeguradoFields are the attributes of an insured object
type ObjetoSeguradoFields struct {
	Codigo          string         `json:"codigo" yaml:"codigo"`
	Tipo            *int           `json:"tipo" yaml:"tipo"`
	DescricaoTipo   string         `json:"descricaoTipo,omitempty" yaml:"descricaoTipo,omitempty"`
	DescricaoObjeto string         `json:"descricaoObjeto" yaml:"descricaoObjeto"`
	Valor           *mathx.Decimal `json:"valor,omitempty" yaml:"valor,omitempty"`
	ValorReal       *mathx.Decimal `json:"valorReal,omitempty" yaml:"valorReal,omitempty"`
	DataInicio      *timex.Date    `json:"dataInicio,omitempty" yaml:"dataInicio,omitempty"`
	DataTermino     *timex.Date    `json:"dataTermino,omitempty" yaml:"dataTermino,omitempty"`

	Coberturas          []Cobertura         `json:"-" yaml:"-" toml:"-"`
	ObjetosPatrimoniais []ObjetoPatrimonial `json:"-" yaml:"-" toml:"-"`
	ObjetosRurais       []ObjetoRural       `json:"-" yaml:"-" toml:"-"`
}

// ObjetoSegurado is a validated insured object with its coverages
type ObjetoSegurado struct {
	f ObjetoSeguradoFields
}

// NewObjetoSegurado validates f and returns an immutable ObjetoSegurado
func NewObjetoSegurado(f ObjetoSeguradoFields) (ObjetoSegurado, error) {
	if err := ValidateObjetoSegurado(f).Reject("ObjetoSegurado"); err != nil {
		return ObjetoSegurado{}, err
	}
	return ObjetoSegurado{f: sro.Detach(f)}, nil
}

// ValidateObjetoSegurado reports every rule f violates
func ValidateObjetoSegurado(f ObjetoSeguradoFields) validation.ValidationResult {
	p := validation.NewPlan("ObjetoSegurado")
	p.Required("codigo", f.Codigo).
		Required("tipo", f.Tipo).
		Required("descricaoObjeto", f.DescricaoObjeto).
		Domain("tipo", f.Tipo, validationx.Range(1, 99)).
		Domain("valor", f.Valor, validationx.NonNegative).
		Domain("valorReal", f.ValorReal, validationx.NonNegative).
		Size("codigo", f.Codigo, validationx.MaxLength(50)).
		Size("descricaoTipo", f.DescricaoTipo, validationx.MaxLength(500)).
		Size("descricaoObjeto", f.DescricaoObjeto, validationx.MaxLength(1024)).
		Size("valor", f.Valor, validationx.Amount).
		Size("valorReal", f.ValorReal, validationx.Amount).
		Ordering("dataTermino", f.DataTermino, validationx.OnOrAfter("dataTermino", "dataInicio", f.DataInicio)).
		Conditionals(objetoSeguradoConditionals, validation.Values{
			"tipo":          f.Tipo,
			"descricaoTipo": f.DescricaoTipo,
			"valor":         f.Valor,
			"valorReal":     f.ValorReal,
			"dataInicio":    f.DataInicio,
		})
	return p.Validate()
}

// Fields returns a copy of the validated attributes
func (o ObjetoSegurado) Fields() ObjetoSeguradoFields { return sro.Detach(o.f) }

// Codigo returns the object's identifier
func (o ObjetoSegurado) Codigo() string { return o.f.Codigo }

// Coberturas returns the coverages of the object
func (o ObjetoSegurado) Coberturas() slicex.View[Cobertura] { return slicex.Freeze(o.f.Coberturas) }

// ObjetosPatrimoniais returns the property details of the object
func (o ObjetoSegurado) ObjetosPatrimoniais() slicex.View[ObjetoPatrimonial] {
	return slicex.Freeze(o.f.ObjetosPatrimoniais)
}

// ObjetosRurais returns the rural details of the object
func (o ObjetoSegurado) ObjetosRurais() slicex.View[ObjetoRural] { return slicex.Freeze(o.f.ObjetosRurais) }

// ===============================
// ObjetoPatrimonial
// ===============================

// ObjetoPatrimonialFields describe an insured property
type ObjetoPatrimonialFields struct {
	TipoImovelSegurado         *int   `json:"tipoImovelSegurado,omitempty" yaml:"tipoImovelSegurado,omitempty"`
	TipoEstruturacaoCondominio *int   `json:"tipoEstruturacaoCondominio,omitempty" yaml:"tipoEstruturacaoCondominio,omitempty"`
	CodigoPostal               string `json:"codigoPostal,omitempty" yaml:"codigoPostal,omitempty"`
	CodigoCnae                 string `json:"codigoCnae,omitempty" yaml:"codigoCnae,omitempty"`
}

// ObjetoPatrimonial is a validated property description
type ObjetoPatrimonial struct {
	f ObjetoPatrimonialFields
}

// NewObjetoPatrimonial validates f and returns an immutable ObjetoPatrimonial
func NewObjetoPatrimonial(f ObjetoPatrimonialFields) (ObjetoPatrimonial, error) {
	if err := ValidateObjetoPatrimonial(f).Reject("ObjetoPatrimonial"); err != nil {
		return ObjetoPatrimonial{}, err
	}
	return ObjetoPatrimonial{f: sro.Detach(f)}, nil
}

// ValidateObjetoPatrimonial reports every rule f violates
func ValidateObjetoPatrimonial(f ObjetoPatrimonialFields) validation.ValidationResult {
	return validation.NewPlan("ObjetoPatrimonial").
		Domain("tipoImovelSegurado", f.TipoImovelSegurado, validationx.Range(1, 99)).
		Domain("tipoEstruturacaoCondominio", f.TipoEstruturacaoCondominio, validationx.Range(1, 99)).
		Size("codigoPostal", f.CodigoPostal, validationx.MaxLength(30)).
		Size("codigoCnae", f.CodigoCnae, validationx.Length(7)).
		Validate()
}

// Fields returns a copy of the validated attributes
func (o ObjetoPatrimonial) Fields() ObjetoPatrimonialFields { return sro.Detach(o.f) }

// ===============================
// ObjetoRural
// ===============================

// ObjetoRuralFields describe rural insurance details
type ObjetoRuralFields struct {
	ParticipaFesr                   *int           `json:"participaFesr,omitempty" yaml:"participaFesr,omitempty"`
	ValorPremioSubvencionado        *mathx.Decimal `json:"valorPremioSubvencionado,omitempty" yaml:"valorPremioSubvencionado,omitempty"`
	OrigemSubvencao                 string         `json:"origemSubvencao,omitempty" yaml:"origemSubvencao,omitempty"`
	AreaSeguradaTotal               *mathx.Decimal `json:"areaSeguradaTotal,omitempty" yaml:"areaSeguradaTotal,omitempty"`
	UnidadeMedidaAreaSegurada       *int           `json:"unidadeMedidaAreaSegurada,omitempty" yaml:"unidadeMedidaAreaSegurada,omitempty"`
	CodigoCultura                   string         `json:"codigoCultura,omitempty" yaml:"codigoCultura,omitempty"`
	CodigoRebanho                   *int           `json:"codigoRebanho,omitempty" yaml:"codigoRebanho,omitempty"`
	CodigoFloresta                  *int           `json:"codigoFloresta,omitempty" yaml:"codigoFloresta,omitempty"`
	UfVistoria                      string         `json:"ufVistoria,omitempty" yaml:"ufVistoria,omitempty"`
	CodigoPostalVistoria            string         `json:"codigoPostalVistoria,omitempty" yaml:"codigoPostalVistoria,omitempty"`
	PaisVistoria                    string         `json:"paisVistoria,omitempty" yaml:"paisVistoria,omitempty"`
	DestinacaoAnimalCobertoPecuario *int           `json:"destinacaoAnimalCobertoPecuario,omitempty" yaml:"destinacaoAnimalCobertoPecuario,omitempty"`
	ClassificacaoAnimalCoberto      *int           `json:"classificacaoAnimalCoberto,omitempty" yaml:"classificacaoAnimalCoberto,omitempty"`
}

// ObjetoRural is a validated rural insurance description
type ObjetoRural struct {
	f ObjetoRuralFields
}

// NewObjetoRural validates f and returns an immutable ObjetoRural
func NewObjetoRural(f ObjetoRuralFields) (ObjetoRural, error) {
	if err := ValidateObjetoRural(f).Reject("ObjetoRural"); err != nil {
		return ObjetoRural{}, err
	}
	return ObjetoRural{f: sro.Detach(f)}, nil
}

// ValidateObjetoRural reports every rule f violates
func ValidateObjetoRural(f ObjetoRuralFields) validation.ValidationResult {
	return validation.NewPlan("ObjetoRural").
		Format("paisVistoria", f.PaisVistoria, validationx.Country).
		Domain("participaFesr", f.ParticipaFesr, validationx.Range(1, 2)).
		Domain("valorPremioSubvencionado", f.ValorPremioSubvencionado, validationx.NonNegative).
		Domain("areaSeguradaTotal", f.AreaSeguradaTotal, validationx.NonNegative).
		Domain("unidadeMedidaAreaSegurada", f.UnidadeMedidaAreaSegurada, validationx.Range(1, 99)).
		Domain("codigoRebanho", f.CodigoRebanho, validationx.Range(1, 99)).
		Domain("codigoFloresta", f.CodigoFloresta, validationx.Range(1, 99)).
		Domain("destinacaoAnimalCobertoPecuario", f.DestinacaoAnimalCobertoPecuario, validationx.Range(1, 99)).
		Domain("classificacaoAnimalCoberto", f.ClassificacaoAnimalCoberto, validationx.Range(1, 99)).
		Size("origemSubvencao", f.OrigemSubvencao, validationx.MaxLength(2)).
		Size("codigoCultura", f.CodigoCultura, validationx.MaxLength(8)).
		Size("ufVistoria", f.UfVistoria, validationx.MaxLength(2)).
		Size("codigoPostalVistoria", f.CodigoPostalVistoria, validationx.MaxLength(30)).
		Size("paisVistoria", f.PaisVistoria, validationx.Length(3)).
		Validate()
}

// Fields returns a copy of the validated attributes
func (o ObjetoRural) Fields() ObjetoRuralFields { return sro.Detach(o.f) }
