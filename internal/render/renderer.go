package render

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// Orientation define o tamanho de página do documento gerado.
type Orientation string

const (
	Portrait  Orientation = "portrait"
	Landscape Orientation = "landscape"
)

// ParseOrientation normaliza a orientação vinda de configuração ou request;
// valores desconhecidos caem em landscape (padrão de certificados).
func ParseOrientation(s string) Orientation {
	if strings.EqualFold(s, string(Portrait)) {
		return Portrait
	}
	return Landscape
}

// ErrBatchMismatch é o erro de contrato de RenderBatch: as listas de markup
// e de caminhos de saída precisam ter o mesmo tamanho.
var ErrBatchMismatch = errors.New("número de markups e de caminhos de saída deve ser igual")

// Renderer converte markup final (CSS e QR já embutidos) em documento
// paginado, individualmente ou em lote.
type Renderer interface {
	// RenderOne devolve os bytes do PDF; quando outputPath é não vazio o
	// arquivo também é gravado em disco. Falhas de conversão são propagadas.
	RenderOne(ctx context.Context, markup, outputPath string, orientation Orientation) ([]byte, error)

	// RenderBatch renderiza cada item de forma independente e devolve os
	// caminhos produzidos com sucesso, na ordem das entradas. A falha de um
	// item é registrada e excluída do resultado sem abortar os demais.
	RenderBatch(ctx context.Context, markups, outputPaths []string, orientation Orientation) ([]string, error)
}

// pageStylesheet envolve o markup com a diretiva de página e as regras que
// mantêm o contêiner do QR com dimensões exatas na conversão.
func pageStylesheet(orientation Orientation) string {
	return fmt.Sprintf(`<style>
@page {
	size: A4 %s;
	margin: 0;
}
body {
	margin: 0;
	padding: 0;
	position: relative;
}
.qr-placeholder {
	position: absolute !important;
	box-sizing: border-box !important;
}
.qr-placeholder img {
	width: 100%% !important;
	height: 100%% !important;
	display: block !important;
	margin: 0 !important;
	padding: 0 !important;
	object-fit: contain !important;
}
</style>
`, orientation)
}

// wrapPage injeta a folha de estilos de página no markup, antes de </head>
// quando existe, senão antes de <body>, senão no início.
func wrapPage(markup string, orientation Orientation) string {
	block := pageStylesheet(orientation)
	if idx := strings.Index(markup, "</head>"); idx >= 0 {
		return markup[:idx] + block + markup[idx:]
	}
	if idx := strings.Index(markup, "<body"); idx >= 0 {
		return markup[:idx] + block + markup[idx:]
	}
	return block + markup
}
