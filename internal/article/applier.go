package article

// Applier commits a parameter set to the document being styled.
type Applier interface {
	ChangeArticle(params ParameterSet)
}

// ApplierFunc adapts a plain function to the Applier interface.
type ApplierFunc func(params ParameterSet)

// ChangeArticle calls f(params).
func (f ApplierFunc) ChangeArticle(params ParameterSet) {
	f(params)
}
