package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"spending-analyzer/internal/domain"
	"spending-analyzer/internal/usecase"
	mock_usecase "spending-analyzer/internal/usecase/mocks"
)

func TestAnalysisUseCase_Analyze(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name        string
		path        string
		records     []domain.Record
		repoError   error
		wantSummary domain.Summary
		wantTotal   float64
		wantErr     bool
	}{
		{
			name: "statement with every kind of row",
			path: "/statements/october.csv",
			records: []domain.Record{
				{Merchant: "TESCO STORES 1234", RawAmount: "£45.67"},
				{Merchant: "AMAZON.CO.UK", RawAmount: "$12.00"},
				{Merchant: "PAYMENT RECEIVED - THANK YOU", RawAmount: "-£100.00"},
				{Merchant: "RANDOM SHOP", RawAmount: "£5.00"},
				{Merchant: "SHOP X", RawAmount: "N/A"},
				{Merchant: "", RawAmount: "£5.00"},
			},
			wantSummary: domain.Summary{
				RowsRead:           6,
				DroppedMissing:     1,
				DroppedUnparseable: 1,
				Excluded:           1,
				Categorised:        3,
			},
			wantTotal: 62.67,
		},
		{
			name:    "empty statement",
			path:    "/statements/empty.csv",
			records: []domain.Record{},
		},
		{
			name:      "repository error",
			path:      "/statements/broken.csv",
			repoError: errors.New("unexpected EOF in quoted field"),
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mStatementRepo := mock_usecase.NewMockStatementRepository(ctrl)
			mStatementRepo.EXPECT().
				GetRecords(gomock.Any(), tt.path).
				Return(tt.records, tt.repoError)

			uc := usecase.NewAnalysisUseCase(mStatementRepo, defaultClassifier(t))
			got, gotErr := uc.Analyze(context.Background(), tt.path)

			if tt.wantErr {
				assert.Error(t, gotErr)
				assert.True(t, errors.Is(gotErr, domain.ErrSourceRead))
				assert.Nil(t, got)
				return
			}

			assert.NoError(t, gotErr)
			require.NotNil(t, got)
			assert.Equal(t, tt.wantSummary, got.Summary)
			assert.InDelta(t, tt.wantTotal, got.OverallTotal, 1e-9)
		})
	}
}

func TestSession_Upload(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mStatementRepo := mock_usecase.NewMockStatementRepository(ctrl)
	gomock.InOrder(
		mStatementRepo.EXPECT().
			GetRecords(gomock.Any(), "first.csv").
			Return([]domain.Record{{Merchant: "TESCO", RawAmount: "£10.00"}}, nil),
		mStatementRepo.EXPECT().
			GetRecords(gomock.Any(), "broken.csv").
			Return(nil, errors.New("bare quote in non-quoted field")),
		mStatementRepo.EXPECT().
			GetRecords(gomock.Any(), "second.csv").
			Return([]domain.Record{{Merchant: "NETFLIX", RawAmount: "£7.99"}}, nil),
	)

	session := usecase.NewSession(usecase.NewAnalysisUseCase(mStatementRepo, defaultClassifier(t)))
	assert.Nil(t, session.Current())

	first, err := session.Upload(context.Background(), "first.csv")
	require.NoError(t, err)
	assert.Same(t, first, session.Current())

	// A failed upload keeps the previous report.
	_, err = session.Upload(context.Background(), "broken.csv")
	assert.True(t, errors.Is(err, domain.ErrSourceRead))
	assert.Same(t, first, session.Current())

	// A new upload replaces the report rather than merging into it.
	second, err := session.Upload(context.Background(), "second.csv")
	require.NoError(t, err)
	assert.Same(t, second, session.Current())
	assert.Equal(t, []domain.NamedTotal{{Name: "SUBSCRIPTIONS", Total: 7.99}}, second.CategoryTotals)
	assert.Nil(t, second.Detail("GROCERY"))
}

func TestLoadClassifier(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("built-in rules when no path is given", func(t *testing.T) {
		mRuleRepo := mock_usecase.NewMockRuleRepository(ctrl)

		c, err := usecase.LoadClassifier(context.Background(), mRuleRepo, "")
		require.NoError(t, err)
		assert.Equal(t, "GROCERY", c.Classify("TESCO").Category)
	})

	t.Run("rules from repository", func(t *testing.T) {
		mRuleRepo := mock_usecase.NewMockRuleRepository(ctrl)
		mRuleRepo.EXPECT().
			GetRuleTable(gomock.Any(), "rules.yaml").
			Return(domain.RuleTable{
				{Kind: domain.RuleFlatCategory, Category: "COFFEE", Keywords: []string{"PRET"}},
			}, nil)

		c, err := usecase.LoadClassifier(context.Background(), mRuleRepo, "rules.yaml")
		require.NoError(t, err)
		assert.Equal(t, "COFFEE", c.Classify("Pret A Manger").Category)
		assert.Equal(t, domain.OutcomeUnmatched, c.Classify("TESCO").Outcome)
	})

	t.Run("repository error", func(t *testing.T) {
		mRuleRepo := mock_usecase.NewMockRuleRepository(ctrl)
		mRuleRepo.EXPECT().
			GetRuleTable(gomock.Any(), "missing.yaml").
			Return(nil, errors.New("no such file"))

		c, err := usecase.LoadClassifier(context.Background(), mRuleRepo, "missing.yaml")
		assert.Error(t, err)
		assert.Nil(t, c)
	})

	t.Run("invalid table", func(t *testing.T) {
		mRuleRepo := mock_usecase.NewMockRuleRepository(ctrl)
		mRuleRepo.EXPECT().
			GetRuleTable(gomock.Any(), "bad.yaml").
			Return(domain.RuleTable{
				{Kind: domain.RuleFlatCategory, Category: "GROCERY", Keywords: []string{"TESCO"}},
				{Kind: domain.RuleSubcategory, Category: "GROCERY", Subcategory: "Aldi", Keywords: []string{"ALDI"}},
			}, nil)

		_, err := usecase.LoadClassifier(context.Background(), mRuleRepo, "bad.yaml")
		assert.True(t, errors.Is(err, domain.ErrInvalidRule))
	})
}
