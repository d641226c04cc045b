package vocabulary

import (
	"context"

	"github.com/minhngo/englishpal-backend/internal/provider"
)

var (
	_ dictionaryProvider = &dictionaryProviderMock{}
	_ translator         = &translatorMock{}
)

type dictionaryProviderMock struct {
	LookupFunc func(ctx context.Context, word string) (*provider.DictionaryResult, error)
}

func (mock *dictionaryProviderMock) Lookup(ctx context.Context, word string) (*provider.DictionaryResult, error) {
	if mock.LookupFunc == nil {
		panic("dictionaryProviderMock.LookupFunc: method is nil but dictionaryProvider.Lookup was just called")
	}
	return mock.LookupFunc(ctx, word)
}

type translatorMock struct {
	EnabledFunc   func() bool
	TranslateFunc func(ctx context.Context, text string) (string, error)
}

func (mock *translatorMock) Enabled() bool {
	if mock.EnabledFunc == nil {
		return true
	}
	return mock.EnabledFunc()
}

func (mock *translatorMock) Translate(ctx context.Context, text string) (string, error) {
	if mock.TranslateFunc == nil {
		panic("translatorMock.TranslateFunc: method is nil but translator.Translate was just called")
	}
	return mock.TranslateFunc(ctx, text)
}
