package generator

import (
	"fmt"

	"github.com/samvera-labs/workgen/internal/patch"
	"github.com/samvera-labs/workgen/internal/work"
)

// hykuModelExtensions are mixed into every generated model.
var hykuModelExtensions = []string{
	"  include Hyrax::Schema(:with_pdf_viewer)",
	"  include Hyrax::Schema(:with_video_embed)",
	"  include Hyrax::ArResource",
	"  include Hyrax::NestedWorks",
	"",
	"  include IiifPrint.model_configuration(",
	"    pdf_split_child_model: GenericWorkResource,",
	"    pdf_splitter_service: IiifPrint::TenantConfig::PdfSplitter",
	"  )",
	"",
	"  prepend OrderAlready.for(:creator)",
}

// modelExtensionsPatch inserts the Hyku mixins before the class's closing end.
func modelExtensionsPatch() patch.Patch {
	return patch.Patch{
		Anchor: patch.Anchor{
			Description: "closing end",
			Match:       patch.Trimmed("end"),
			Position:    patch.Before,
			Last:        true,
		},
		Lines: hykuModelExtensions,
	}
}

// controllerBehaviorPatch adds Hyku's controller behavior next to Hyrax's.
func controllerBehaviorPatch() patch.Patch {
	return patch.Patch{
		Anchor: patch.Anchor{
			Description: "include Hyrax::WorksControllerBehavior",
			Match:       patch.Trimmed("include Hyrax::WorksControllerBehavior"),
			Position:    patch.After,
		},
		Lines: []string{"    include Hyku::WorksControllerBehavior"},
		Guard: patch.Trimmed("include Hyku::WorksControllerBehavior"),
	}
}

// schemaContextPatch adds a respond_to expectation per attribute to the
// model spec.
func schemaContextPatch(attrs []work.Attribute) patch.Patch {
	lines := []string{"", "  context 'includes schema defined metadata' do"}
	for _, a := range attrs {
		lines = append(lines, fmt.Sprintf("    it { is_expected.to respond_to(:%s) }", a.Name))
	}
	lines = append(lines, "  end")

	return patch.Patch{
		Anchor: patch.Anchor{
			Description: "it_behaves_like 'a Hyrax::Work'",
			Match:       patch.Trimmed("it_behaves_like 'a Hyrax::Work'"),
			Position:    patch.After,
		},
		Lines: lines,
	}
}

// viewContent is the search result partial.
func viewContent(spec *work.ResourceSpec) []byte {
	return []byte(fmt.Sprintf("<%%# This is a search result view %%>\n"+
		"<%%= render 'catalog/document', document: %s, document_counter: %s_counter  %%>\n",
		spec.FileName, spec.FileName))
}
