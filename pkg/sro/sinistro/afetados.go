package sinistro

import (
	"github.com/msto63/sro/foundation/core/validation"
	"github.com/msto63/sro/foundation/utils/timex"
	"github.com/msto63/sro/foundation/utils/validationx"
	"github.com/msto63/sro/pkg/sro"
)

// ===============================
// JustificativaNegativa
// ===============================

var justificativaConditionals = validation.ConditionalTable{
	{
		Name:    "descricaoWhenOutros",
		When:    validation.Equals("justificativa", sro.Outros),
		Field:   "descricao",
		Rule:    validationx.Required,
		Message: "is required when justificativa is 99",
	},
}

// JustificativaNegativaFields are a reason a claim was denied
type JustificativaNegativaFields struct {
	Justificativa *int   `json:"justificativa" yaml:"justificativa"`
	Descricao     string `json:"descricao,omitempty" yaml:"descricao,omitempty"`
}

// JustificativaNegativa is a validated denial reason
type JustificativaNegativa struct {
	f JustificativaNegativaFields
}

// NewJustificativaNegativa validates f and returns an immutable denial reason
func NewJustificativaNegativa(f JustificativaNegativaFields) (JustificativaNegativa, error) {
	err := validation.NewPlan("JustificativaNegativa").
		Required("justificativa", f.Justificativa).
		Domain("justificativa", f.Justificativa, validationx.Range(1, 99)).
		Size("descricao", f.Descricao, validationx.MaxLength(1024)).
		Conditionals(justificativaConditionals, validation.Values{
			"justificativa": f.Justificativa,
			"descricao":     f.Descricao,
		}).
		Validate().
		Reject("JustificativaNegativa")
	if err != nil {
		return JustificativaNegativa{}, err
	}
	return JustificativaNegativa{f: sro.Detach(f)}, nil
}

// Fields returns a copy of the validated attributes
func (j JustificativaNegativa) Fields() JustificativaNegativaFields { return sro.Detach(j.f) }

// ===============================
// DocumentoAfetado
// ===============================

// DocumentoAfetadoFields identify a policy affected by a claim
type DocumentoAfetadoFields struct {
	ApoliceCodigo string `json:"apoliceCodigo" yaml:"apoliceCodigo"`
	Certificado   string `json:"certificado,omitempty" yaml:"certificado,omitempty"`
	NumeroEndosso string `json:"numeroEndosso,omitempty" yaml:"numeroEndosso,omitempty"`
}

// DocumentoAfetado is a validated affected policy
type DocumentoAfetado struct {
	f DocumentoAfetadoFields
}

// NewDocumentoAfetado validates f and returns an immutable DocumentoAfetado
func NewDocumentoAfetado(f DocumentoAfetadoFields) (DocumentoAfetado, error) {
	err := validation.NewPlan("DocumentoAfetado").
		Required("apoliceCodigo", f.ApoliceCodigo).
		Size("apoliceCodigo", f.ApoliceCodigo, validationx.MaxLength(60)).
		Size("certificado", f.Certificado, validationx.MaxLength(60)).
		Size("numeroEndosso", f.NumeroEndosso, validationx.MaxLength(60)).
		Validate().
		Reject("DocumentoAfetado")
	if err != nil {
		return DocumentoAfetado{}, err
	}
	return DocumentoAfetado{f: f}, nil
}

// Fields returns the validated attributes
func (d DocumentoAfetado) Fields() DocumentoAfetadoFields { return d.f }

// ApoliceCodigo returns the affected policy number
func (d DocumentoAfetado) ApoliceCodigo() string { return d.f.ApoliceCodigo }

// ===============================
// CoberturaAfetada
// ===============================

// CoberturaAfetadaFields identify a coverage affected by a claim
type CoberturaAfetadaFields struct {
	GrupoRamo        string      `json:"grupoRamo" yaml:"grupoRamo"`
	Codigo           *int        `json:"codigo,omitempty" yaml:"codigo,omitempty"`
	CodigoObjeto     string      `json:"codigoObjeto,omitempty" yaml:"codigoObjeto,omitempty"`
	CoberturaInterna string      `json:"coberturaInterna,omitempty" yaml:"coberturaInterna,omitempty"`
	OutrasDescricao  string      `json:"outrasDescricao,omitempty" yaml:"outrasDescricao,omitempty"`
	DataAviso        *timex.Date `json:"dataAviso,omitempty" yaml:"dataAviso,omitempty"`
	DataOcorrencia   *timex.Date `json:"dataOcorrencia,omitempty" yaml:"dataOcorrencia,omitempty"`
	DataRegistro     *timex.Date `json:"dataRegistro,omitempty" yaml:"dataRegistro,omitempty"`
}

// CoberturaAfetada is a validated affected coverage
type CoberturaAfetada struct {
	f CoberturaAfetadaFields
}

// NewCoberturaAfetada validates f and returns an immutable CoberturaAfetada
func NewCoberturaAfetada(f CoberturaAfetadaFields, today timex.Date) (CoberturaAfetada, error) {
	notFuture := validationx.NotFuture(today)
	err := validation.NewPlan("CoberturaAfetada").
		Required("grupoRamo", f.GrupoRamo).
		Domain("codigo", f.Codigo, validationx.Range(0, 99999)).
		Size("grupoRamo", f.GrupoRamo, validationx.Length(4)).
		Size("codigoObjeto", f.CodigoObjeto, validationx.MaxLength(50)).
		Size("coberturaInterna", f.CoberturaInterna, validationx.MaxLength(50)).
		Size("outrasDescricao", f.OutrasDescricao, validationx.MaxLength(500)).
		Ordering("dataAviso", f.DataAviso, notFuture).
		Ordering("dataOcorrencia", f.DataOcorrencia, notFuture).
		Ordering("dataRegistro", f.DataRegistro, notFuture).
		Validate().
		Reject("CoberturaAfetada")
	if err != nil {
		return CoberturaAfetada{}, err
	}
	return CoberturaAfetada{f: sro.Detach(f)}, nil
}

// Fields returns a copy of the validated attributes
func (c CoberturaAfetada) Fields() CoberturaAfetadaFields { return sro.Detach(c.f) }

// ===============================
// VistoriaRural
// ===============================

// VistoriaRuralFields locate a rural survey
type VistoriaRuralFields struct {
	UF           string `json:"uf,omitempty" yaml:"uf,omitempty"`
	CodigoPostal string `json:"codigoPostal,omitempty" yaml:"codigoPostal,omitempty"`
	Pais         string `json:"pais,omitempty" yaml:"pais,omitempty"`
}

// VistoriaRural is a validated rural survey location
type VistoriaRural struct {
	f VistoriaRuralFields
}

// NewVistoriaRural validates f and returns an immutable VistoriaRural
func NewVistoriaRural(f VistoriaRuralFields) (VistoriaRural, error) {
	err := validation.NewPlan("VistoriaRural").
		Format("pais", f.Pais, validationx.Country).
		Size("uf", f.UF, validationx.MaxLength(2)).
		Size("codigoPostal", f.CodigoPostal, validationx.MaxLength(30)).
		Validate().
		Reject("VistoriaRural")
	if err != nil {
		return VistoriaRural{}, err
	}
	return VistoriaRural{f: f}, nil
}

// Fields returns the validated attributes
func (v VistoriaRural) Fields() VistoriaRuralFields { return v.f }

// ===============================
// Automovel
// ===============================

// AutomovelFields describe a vehicle involved in a claim
type AutomovelFields struct {
	CodigoObjeto   string      `json:"codigoObjeto" yaml:"codigoObjeto"`
	CausaSinistro  *int        `json:"causaSinistro,omitempty" yaml:"causaSinistro,omitempty"`
	SexoCondutor   *int        `json:"sexoCondutor,omitempty" yaml:"sexoCondutor,omitempty"`
	DataNascimento *timex.Date `json:"dataNascimento,omitempty" yaml:"dataNascimento,omitempty"`
	Pais           string      `json:"pais,omitempty" yaml:"pais,omitempty"`
	CodigoPostal   string      `json:"codigoPostal,omitempty" yaml:"codigoPostal,omitempty"`
}

// Automovel is a validated vehicle
type Automovel struct {
	f AutomovelFields
}

// NewAutomovel validates f and returns an immutable Automovel
func NewAutomovel(f AutomovelFields, today timex.Date) (Automovel, error) {
	err := validation.NewPlan("Automovel").
		Required("codigoObjeto", f.CodigoObjeto).
		Format("pais", f.Pais, validationx.Country).
		Domain("causaSinistro", f.CausaSinistro, validationx.Range(1, 99)).
		Domain("sexoCondutor", f.SexoCondutor, validationx.Range(1, 99)).
		Size("codigoObjeto", f.CodigoObjeto, validationx.MaxLength(50)).
		Size("codigoPostal", f.CodigoPostal, validationx.MaxLength(30)).
		Ordering("dataNascimento", f.DataNascimento, validationx.NotFuture(today)).
		Validate().
		Reject("Automovel")
	if err != nil {
		return Automovel{}, err
	}
	return Automovel{f: sro.Detach(f)}, nil
}

// Fields returns a copy of the validated attributes
func (a Automovel) Fields() AutomovelFields { return sro.Detach(a.f) }
