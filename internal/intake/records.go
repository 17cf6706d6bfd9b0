package intake

import (
	"github.com/msto63/sro/pkg/sro"
	"github.com/msto63/sro/pkg/sro/ccg"
	"github.com/msto63/sro/pkg/sro/complauto"
	"github.com/msto63/sro/pkg/sro/documento"
	"github.com/msto63/sro/pkg/sro/endosso"
	"github.com/msto63/sro/pkg/sro/movimentopremio"
	"github.com/msto63/sro/pkg/sro/movimentosinistro"
	"github.com/msto63/sro/pkg/sro/sinistro"
)

// Record is one decoded input record awaiting construction
type Record interface {
	// Key identifies the record in reports
	Key() string
	build(b *Builder) (any, error)
}

// newRecord returns an empty record of kind for the decoders to fill
func newRecord(kind sro.Kind) Record {
	switch kind {
	case sro.KindDocumento:
		return &DocumentoRecord{}
	case sro.KindEndosso:
		return &EndossoRecord{}
	case sro.KindMovimentoPremio:
		return &MovimentoPremioRecord{}
	case sro.KindSinistro:
		return &SinistroRecord{}
	case sro.KindMovimentoSinistro:
		return &MovimentoSinistroRecord{}
	case sro.KindComplAuto:
		return &ComplAutoRecord{}
	case sro.KindCcg:
		return &CcgRecord{}
	}
	return nil
}

// ApoliceParts are the child lists shared by documento and endosso
type ApoliceParts struct {
	Ccgs             []documento.CcgRefFields        `json:"ccgs" yaml:"ccgs" toml:"ccgs"`
	Segurados        []documento.SeguradoFields      `json:"segurados" yaml:"segurados" toml:"segurados"`
	Beneficiarios    []documento.BeneficiarioFields  `json:"beneficiarios" yaml:"beneficiarios" toml:"beneficiarios"`
	Tomadores        []documento.TomadorFields       `json:"tomadores" yaml:"tomadores" toml:"tomadores"`
	Intermediarios   []documento.IntermediarioFields `json:"intermediarios" yaml:"intermediarios" toml:"intermediarios"`
	ObjetosSegurados []ObjetoSeguradoRecord          `json:"objetosSegurados" yaml:"objetosSegurados" toml:"objetosSegurados"`
	PremioApolice    *documento.PremioApoliceFields  `json:"premioApolice" yaml:"premioApolice" toml:"premioApolice"`
	Cosseguro        *CosseguroRecord                `json:"cosseguro" yaml:"cosseguro" toml:"cosseguro"`
}

// builtParts holds the constructed children of ApoliceParts
type builtParts struct {
	ccgs             []documento.CcgRef
	segurados        []documento.Segurado
	beneficiarios    []documento.Beneficiario
	tomadores        []documento.Tomador
	intermediarios   []documento.Intermediario
	objetosSegurados []documento.ObjetoSegurado
	premioApolice    *documento.PremioApolice
	cosseguro        *documento.Cosseguro
}

func (p ApoliceParts) construct(b *Builder, c *collector) builtParts {
	return builtParts{
		ccgs: each(c, "ccgs", p.Ccgs, func(f documento.CcgRefFields) (documento.CcgRef, error) {
			return documento.NewCcgRef(f, b.today)
		}),
		segurados: each(c, "segurados", p.Segurados, func(f documento.SeguradoFields) (documento.Segurado, error) {
			return documento.NewSegurado(f, b.today)
		}),
		beneficiarios:  each(c, "beneficiarios", p.Beneficiarios, documento.NewBeneficiario),
		tomadores:      each(c, "tomadores", p.Tomadores, documento.NewTomador),
		intermediarios: each(c, "intermediarios", p.Intermediarios, documento.NewIntermediario),
		objetosSegurados: each(c, "objetosSegurados", p.ObjetosSegurados, func(r ObjetoSeguradoRecord) (documento.ObjetoSegurado, error) {
			return r.construct(b)
		}),
		premioApolice: one(c, "premioApolice", p.PremioApolice, documento.NewPremioApolice),
		cosseguro: one(c, "cosseguro", p.Cosseguro, func(r CosseguroRecord) (documento.Cosseguro, error) {
			return r.construct()
		}),
	}
}

// DocumentoRecord is an input documento with its children
type DocumentoRecord struct {
	documento.DocumentoFields `yaml:",inline"`
	ApoliceParts              `yaml:",inline"`
}

// Key returns the policy code
func (r *DocumentoRecord) Key() string { return r.ApoliceCodigo }

func (r *DocumentoRecord) build(b *Builder) (any, error) {
	c := &collector{}
	parts := r.ApoliceParts.construct(b, c)
	return construct(c, "Documento", func() (documento.Documento, error) {
		f := r.DocumentoFields
		f.Ccgs = parts.ccgs
		f.Segurados = parts.segurados
		f.Beneficiarios = parts.beneficiarios
		f.Tomadores = parts.tomadores
		f.Intermediarios = parts.intermediarios
		f.ObjetosSegurados = parts.objetosSegurados
		f.PremioApolice = parts.premioApolice
		f.Cosseguro = parts.cosseguro
		return documento.NewDocumento(f, b.today)
	})
}

// ObjetoSeguradoRecord is an insured object with its coverages and details
type ObjetoSeguradoRecord struct {
	documento.ObjetoSeguradoFields `yaml:",inline"`
	Coberturas                     []CoberturaRecord                   `json:"coberturas" yaml:"coberturas" toml:"coberturas"`
	ObjetosPatrimoniais            []documento.ObjetoPatrimonialFields `json:"objetosPatrimoniais" yaml:"objetosPatrimoniais" toml:"objetosPatrimoniais"`
	ObjetosRurais                  []documento.ObjetoRuralFields       `json:"objetosRurais" yaml:"objetosRurais" toml:"objetosRurais"`
}

func (r ObjetoSeguradoRecord) construct(b *Builder) (documento.ObjetoSegurado, error) {
	c := &collector{}
	coberturas := each(c, "coberturas", r.Coberturas, func(cr CoberturaRecord) (documento.Cobertura, error) {
		return cr.construct()
	})
	patrimoniais := each(c, "objetosPatrimoniais", r.ObjetosPatrimoniais, documento.NewObjetoPatrimonial)
	rurais := each(c, "objetosRurais", r.ObjetosRurais, documento.NewObjetoRural)
	return construct(c, "ObjetoSegurado", func() (documento.ObjetoSegurado, error) {
		f := r.ObjetoSeguradoFields
		f.Coberturas = coberturas
		f.ObjetosPatrimoniais = patrimoniais
		f.ObjetosRurais = rurais
		return documento.NewObjetoSegurado(f)
	})
}

// CoberturaRecord is a coverage with its deductibles and beneficiaries
type CoberturaRecord struct {
	documento.CoberturaFields `yaml:",inline"`
	Franquias                 []documento.FranquiaFields                  `json:"franquias" yaml:"franquias" toml:"franquias"`
	BeneficiariosPorCobertura []documento.BeneficiariosPorCoberturaFields `json:"beneficiariosPorCobertura" yaml:"beneficiariosPorCobertura" toml:"beneficiariosPorCobertura"`
}

func (r CoberturaRecord) construct() (documento.Cobertura, error) {
	c := &collector{}
	franquias := each(c, "franquias", r.Franquias, documento.NewFranquia)
	beneficiarios := each(c, "beneficiariosPorCobertura", r.BeneficiariosPorCobertura, documento.NewBeneficiariosPorCobertura)
	return construct(c, "Cobertura", func() (documento.Cobertura, error) {
		f := r.CoberturaFields
		f.Franquias = franquias
		f.BeneficiariosPorCobertura = beneficiarios
		return documento.NewCobertura(f)
	})
}

// CosseguroRecord is a coinsurance block with its ceding insurers
type CosseguroRecord struct {
	documento.CosseguroFields `yaml:",inline"`
	Cessionarias              []documento.CessionariasCosseguroFields `json:"cessionarias" yaml:"cessionarias" toml:"cessionarias"`
}

func (r CosseguroRecord) construct() (documento.Cosseguro, error) {
	c := &collector{}
	cessionarias := each(c, "cessionarias", r.Cessionarias, documento.NewCessionariasCosseguro)
	return construct(c, "Cosseguro", func() (documento.Cosseguro, error) {
		f := r.CosseguroFields
		f.Cessionarias = cessionarias
		return documento.NewCosseguro(f)
	})
}

// EndossoRecord is an input endorsement with its children
type EndossoRecord struct {
	endosso.EndossoFields `yaml:",inline"`
	ApoliceParts          `yaml:",inline"`
	EndossosAssociados    []endosso.EndossoAssociadoFields `json:"endossosAssociados" yaml:"endossosAssociados" toml:"endossosAssociados"`
}

// Key returns policy and endorsement code
func (r *EndossoRecord) Key() string { return r.ApoliceCodigo + "/" + r.EndossoFields.EndossoCodigo }

func (r *EndossoRecord) build(b *Builder) (any, error) {
	c := &collector{}
	associados := each(c, "endossosAssociados", r.EndossosAssociados, endosso.NewEndossoAssociado)
	parts := r.ApoliceParts.construct(b, c)
	return construct(c, "Endosso", func() (endosso.Endosso, error) {
		f := r.EndossoFields
		f.EndossosAssociados = associados
		f.Ccgs = parts.ccgs
		f.Segurados = parts.segurados
		f.Beneficiarios = parts.beneficiarios
		f.Tomadores = parts.tomadores
		f.Intermediarios = parts.intermediarios
		f.ObjetosSegurados = parts.objetosSegurados
		f.PremioApolice = parts.premioApolice
		f.Cosseguro = parts.cosseguro
		return endosso.NewEndosso(f, b.today)
	})
}

// MovimentoPremioRecord is a premium movement with its per-coverage breakdown
type MovimentoPremioRecord struct {
	movimentopremio.MovimentoPremioFields `yaml:",inline"`
	PremioCobertura                       []movimentopremio.PremioCoberturaFields `json:"premioCobertura" yaml:"premioCobertura" toml:"premioCobertura"`
}

// Key returns the movement identifier
func (r *MovimentoPremioRecord) Key() string { return r.IdentificadorMovimento }

func (r *MovimentoPremioRecord) build(b *Builder) (any, error) {
	c := &collector{}
	coberturas := each(c, "premioCobertura", r.PremioCobertura, movimentopremio.NewPremioCobertura)
	return construct(c, "MovimentoPremio", func() (movimentopremio.MovimentoPremio, error) {
		f := r.MovimentoPremioFields
		f.PremioCobertura = coberturas
		return movimentopremio.NewMovimentoPremio(f, b.today)
	})
}

// SinistroRecord is a claim with its affected documents and details
type SinistroRecord struct {
	sinistro.SinistroFields `yaml:",inline"`
	Justificativas          []sinistro.JustificativaNegativaFields `json:"justificativas" yaml:"justificativas" toml:"justificativas"`
	DocumentosAfetados      []sinistro.DocumentoAfetadoFields      `json:"documentosAfetados" yaml:"documentosAfetados" toml:"documentosAfetados"`
	CoberturasAfetadas      []sinistro.CoberturaAfetadaFields      `json:"coberturasAfetadas" yaml:"coberturasAfetadas" toml:"coberturasAfetadas"`
	VistoriasRurais         []sinistro.VistoriaRuralFields         `json:"vistoriasRurais" yaml:"vistoriasRurais" toml:"vistoriasRurais"`
	Automoveis              []sinistro.AutomovelFields             `json:"automoveis" yaml:"automoveis" toml:"automoveis"`
}

// Key returns the claim code
func (r *SinistroRecord) Key() string { return r.CodigoSinistro }

func (r *SinistroRecord) build(b *Builder) (any, error) {
	c := &collector{}
	justificativas := each(c, "justificativas", r.Justificativas, sinistro.NewJustificativaNegativa)
	documentos := each(c, "documentosAfetados", r.DocumentosAfetados, sinistro.NewDocumentoAfetado)
	coberturas := each(c, "coberturasAfetadas", r.CoberturasAfetadas, func(f sinistro.CoberturaAfetadaFields) (sinistro.CoberturaAfetada, error) {
		return sinistro.NewCoberturaAfetada(f, b.today)
	})
	vistorias := each(c, "vistoriasRurais", r.VistoriasRurais, sinistro.NewVistoriaRural)
	automoveis := each(c, "automoveis", r.Automoveis, func(f sinistro.AutomovelFields) (sinistro.Automovel, error) {
		return sinistro.NewAutomovel(f, b.today)
	})
	return construct(c, "Sinistro", func() (sinistro.Sinistro, error) {
		f := r.SinistroFields
		f.Justificativas = justificativas
		f.DocumentosAfetados = documentos
		f.CoberturasAfetadas = coberturas
		f.VistoriasRurais = vistorias
		f.Automoveis = automoveis
		return sinistro.NewSinistro(f, b.today)
	})
}

// MovimentoSinistroRecord is a claim movement with its additional amounts
type MovimentoSinistroRecord struct {
	movimentosinistro.MovimentoSinistroFields `yaml:",inline"`
	Adicionais                                []movimentosinistro.AdicionalFields `json:"adicionais" yaml:"adicionais" toml:"adicionais"`
}

// Key returns the movement identifier
func (r *MovimentoSinistroRecord) Key() string { return r.IdentificadorMovimento }

func (r *MovimentoSinistroRecord) build(b *Builder) (any, error) {
	c := &collector{}
	adicionais := each(c, "adicionais", r.Adicionais, movimentosinistro.NewAdicional)
	return construct(c, "MovimentoSinistro", func() (movimentosinistro.MovimentoSinistro, error) {
		f := r.MovimentoSinistroFields
		f.Adicionais = adicionais
		return movimentosinistro.NewMovimentoSinistro(f, b.today)
	})
}

// ComplAutoRecord is the auto complement with coverages, deductibles and drivers
type ComplAutoRecord struct {
	complauto.ComplAutoFields `yaml:",inline"`
	Coberturas                []complauto.CoberturaAutomovelFields      `json:"coberturas" yaml:"coberturas" toml:"coberturas"`
	Franquias                 []complauto.FranquiaAutoFields            `json:"franquias" yaml:"franquias" toml:"franquias"`
	Condutores                []complauto.PessoaAssociadaCondutorFields `json:"condutores" yaml:"condutores" toml:"condutores"`
}

// Key returns the insured object code
func (r *ComplAutoRecord) Key() string { return r.Codigo }

func (r *ComplAutoRecord) build(b *Builder) (any, error) {
	c := &collector{}
	coberturas := each(c, "coberturas", r.Coberturas, complauto.NewCoberturaAutomovel)
	franquias := each(c, "franquias", r.Franquias, complauto.NewFranquiaAuto)
	condutores := each(c, "condutores", r.Condutores, func(f complauto.PessoaAssociadaCondutorFields) (complauto.PessoaAssociadaCondutor, error) {
		return complauto.NewPessoaAssociadaCondutor(f, b.today)
	})
	return construct(c, "ComplAuto", func() (complauto.ComplAuto, error) {
		f := r.ComplAutoFields
		f.Coberturas = coberturas
		f.Franquias = franquias
		f.Condutores = condutores
		return complauto.NewComplAuto(f)
	})
}

// CcgRecord is a guarantee contract with its parties and collateral
type CcgRecord struct {
	ccg.CcgFields `yaml:",inline"`
	Tomadores     []ccg.TomadorFields   `json:"tomadores" yaml:"tomadores" toml:"tomadores"`
	Colaterais    []ccg.ColateralFields `json:"colaterais" yaml:"colaterais" toml:"colaterais"`
	Fiadores      []ccg.FiadorFields    `json:"fiadores" yaml:"fiadores" toml:"fiadores"`
}

// Key returns the contract identification
func (r *CcgRecord) Key() string { return r.CcgIdentificacao }

func (r *CcgRecord) build(b *Builder) (any, error) {
	c := &collector{}
	tomadores := each(c, "tomadores", r.Tomadores, ccg.NewTomador)
	colaterais := each(c, "colaterais", r.Colaterais, ccg.NewColateral)
	fiadores := each(c, "fiadores", r.Fiadores, ccg.NewFiador)
	return construct(c, "Ccg", func() (ccg.Ccg, error) {
		f := r.CcgFields
		f.Tomadores = tomadores
		f.Colaterais = colaterais
		f.Fiadores = fiadores
		return ccg.NewCcg(f, b.today)
	})
}
