package settlement_test

import (
	"testing"

	"github.com/alj030327/arvs-fl-04-sub000/internal/apperrors"
	"github.com/alj030327/arvs-fl-04-sub000/internal/core/domain"
	"github.com/alj030327/arvs-fl-04-sub000/internal/utils/settlement"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(v int64) decimal.Decimal {
	return decimal.NewFromInt(v)
}

func decPtr(v int64) *decimal.Decimal {
	d := decimal.NewFromInt(v)
	return &d
}

func TestSignedValue(t *testing.T) {
	tests := []struct {
		name  string
		asset domain.Asset
		want  decimal.Decimal
	}{
		{
			name:  "bank deposit is positive",
			asset: domain.Asset{AssetType: "Bankinsättning", Amount: dec(450000)},
			want:  dec(450000),
		},
		{
			name:  "shares are positive",
			asset: domain.Asset{AssetType: "Aktier", Amount: dec(280000)},
			want:  dec(280000),
		},
		{
			name:  "mortgage is negative",
			asset: domain.Asset{AssetType: "Bolån", Amount: dec(125000)},
			want:  dec(-125000),
		},
		{
			name:  "credit card is negative",
			asset: domain.Asset{AssetType: "Kreditkort", Amount: dec(12000)},
			want:  dec(-12000),
		},
		{
			name:  "unknown type defaults to asset polarity",
			asset: domain.Asset{AssetType: "Konstsamling", Amount: dec(90000)},
			want:  dec(90000),
		},
		{
			name:  "classification is case sensitive",
			asset: domain.Asset{AssetType: "bolån", Amount: dec(125000)},
			want:  dec(125000),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := settlement.SignedValue(tt.asset)
			assert.True(t, tt.want.Equal(got), "want %s, got %s", tt.want, got)
		})
	}
}

func TestSignedValue_DebtPolarityNeverPositive(t *testing.T) {
	for _, label := range domain.DebtAssetTypes() {
		asset := domain.Asset{AssetType: label, Amount: dec(50000)}
		assert.True(t, settlement.SignedValue(asset).LessThanOrEqual(decimal.Zero), "debt type %s", label)
	}
}

func TestTotalEstateValue_ExampleScenario(t *testing.T) {
	assets := []domain.Asset{
		{AssetID: "a1", AssetType: "Bankinsättning", Amount: dec(450000)},
		{AssetID: "a2", AssetType: "Aktier", Amount: dec(280000)},
		{AssetID: "a3", AssetType: "Bolån", Amount: dec(125000)},
	}
	total := settlement.TotalEstateValue(assets)
	assert.True(t, dec(605000).Equal(total), "got %s", total)
}

func TestDistributableContribution(t *testing.T) {
	allocated := map[string]domain.Allocation{
		"a1": {AssetID: "a1", BeneficiaryID: "b1"},
	}

	tests := []struct {
		name        string
		asset       domain.Asset
		allocations map[string]domain.Allocation
		want        decimal.Decimal
	}{
		{
			name:  "free asset contributes full signed value",
			asset: domain.Asset{AssetID: "a9", AssetType: "Aktier", Amount: dec(280000)},
			want:  dec(280000),
		},
		{
			name:  "free debt contributes negative signed value",
			asset: domain.Asset{AssetID: "a9", AssetType: "Billån", Amount: dec(80000)},
			want:  dec(-80000),
		},
		{
			name:        "allocated asset is carved out entirely",
			asset:       domain.Asset{AssetID: "a1", AssetType: "Bankinsättning", Amount: dec(180000)},
			allocations: allocated,
			want:        decimal.Zero,
		},
		{
			name:  "toRemain without amountToRemain locks everything",
			asset: domain.Asset{AssetID: "a9", AssetType: "Bankinsättning", Amount: dec(300000), ToRemain: true},
			want:  decimal.Zero,
		},
		{
			name:  "toRemain without amountToRemain locks a debt too",
			asset: domain.Asset{AssetID: "a9", AssetType: "Bolån", Amount: dec(125000), ToRemain: true},
			want:  decimal.Zero,
		},
		{
			name: "toRemain takes precedence over an allocation",
			asset: domain.Asset{
				AssetID: "a1", AssetType: "Bankinsättning", Amount: dec(180000), ToRemain: true,
			},
			allocations: allocated,
			want:        decimal.Zero,
		},
		{
			name: "partially locked asset contributes the unlocked remainder",
			asset: domain.Asset{
				AssetID: "a9", AssetType: "Bankinsättning", Amount: dec(300000),
				ToRemain: true, AmountToRemain: decPtr(120000),
			},
			want: dec(180000),
		},
		{
			name: "fully locked asset via amountToRemain contributes zero",
			asset: domain.Asset{
				AssetID: "a9", AssetType: "Aktier", Amount: dec(280000),
				ToRemain: true, AmountToRemain: decPtr(280000),
			},
			want: decimal.Zero,
		},
		{
			name: "debt lock covering the whole magnitude absorbs the debt",
			asset: domain.Asset{
				AssetID: "a9", AssetType: "Bolån", Amount: dec(125000),
				ToRemain: true, AmountToRemain: decPtr(125000),
			},
			want: decimal.Zero,
		},
		{
			name: "partially locked debt floors at zero",
			asset: domain.Asset{
				AssetID: "a9", AssetType: "Bolån", Amount: dec(125000),
				ToRemain: true, AmountToRemain: decPtr(100000),
			},
			want: decimal.Zero,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.allocations == nil {
				tt.allocations = map[string]domain.Allocation{}
			}
			got := settlement.DistributableContribution(tt.asset, tt.allocations)
			assert.True(t, tt.want.Equal(got), "want %s, got %s", tt.want, got)
		})
	}
}

func TestDistributableAmount_NoLocksEqualsTotal(t *testing.T) {
	assets := []domain.Asset{
		{AssetID: "a1", AssetType: "Bankinsättning", Amount: dec(450000)},
		{AssetID: "a2", AssetType: "Aktier", Amount: dec(280000)},
		{AssetID: "a3", AssetType: "Bolån", Amount: dec(125000)},
	}
	none := map[string]domain.Allocation{}

	pool := settlement.DistributableAmount(assets, none)
	total := settlement.TotalEstateValue(assets)
	assert.True(t, total.Equal(pool), "pool %s should equal total %s when nothing is locked or allocated", pool, total)
}

func TestDistributableAmount_FlooredAtZero(t *testing.T) {
	assets := []domain.Asset{
		{AssetID: "a1", AssetType: "Bankinsättning", Amount: dec(50000)},
		{AssetID: "a2", AssetType: "Privatlån", Amount: dec(90000)},
	}
	pool := settlement.DistributableAmount(assets, map[string]domain.Allocation{})
	assert.True(t, pool.IsZero(), "over-indebted estate must distribute zero, got %s", pool)
}

func TestDistributableAmount_LockedMortgageScenario(t *testing.T) {
	// Same estate as the headline scenario but the mortgage stays with the
	// estate in full, so the pool excludes it entirely.
	assets := []domain.Asset{
		{AssetID: "a1", AssetType: "Bankinsättning", Amount: dec(450000)},
		{AssetID: "a2", AssetType: "Aktier", Amount: dec(280000)},
		{AssetID: "a3", AssetType: "Bolån", Amount: dec(125000), ToRemain: true, AmountToRemain: decPtr(125000)},
	}
	pool := settlement.DistributableAmount(assets, map[string]domain.Allocation{})
	assert.True(t, dec(730000).Equal(pool), "got %s", pool)
}

func TestAllocatedAssetValue(t *testing.T) {
	assets := []domain.Asset{
		{AssetID: "a1", AssetType: "Bankinsättning", Amount: dec(180000)},
		{AssetID: "a2", AssetType: "Aktier", Amount: dec(280000)},
		{AssetID: "a3", AssetType: "Fritidshus", Amount: dec(900000), ToRemain: true},
	}

	t.Run("full asset amount by default", func(t *testing.T) {
		allocations := domain.IndexAllocations([]domain.Allocation{
			{AssetID: "a1", BeneficiaryID: "b1"},
		})
		got := settlement.AllocatedAssetValue(assets, allocations)
		assert.True(t, dec(180000).Equal(got), "got %s", got)
	})

	t.Run("override amount wins", func(t *testing.T) {
		allocations := domain.IndexAllocations([]domain.Allocation{
			{AssetID: "a1", BeneficiaryID: "b1", Amount: decPtr(100000)},
		})
		got := settlement.AllocatedAssetValue(assets, allocations)
		assert.True(t, dec(100000).Equal(got), "got %s", got)
	})

	t.Run("toRemain assets are excluded", func(t *testing.T) {
		allocations := domain.IndexAllocations([]domain.Allocation{
			{AssetID: "a1", BeneficiaryID: "b1"},
			{AssetID: "a3", BeneficiaryID: "b2"},
		})
		got := settlement.AllocatedAssetValue(assets, allocations)
		assert.True(t, dec(180000).Equal(got), "got %s", got)
	})

	t.Run("unknown asset references are skipped", func(t *testing.T) {
		allocations := domain.IndexAllocations([]domain.Allocation{
			{AssetID: "missing", BeneficiaryID: "b1"},
		})
		got := settlement.AllocatedAssetValue(assets, allocations)
		assert.True(t, got.IsZero(), "got %s", got)
	})
}

func TestIndexAllocations_LastWriteWins(t *testing.T) {
	index := domain.IndexAllocations([]domain.Allocation{
		{AssetID: "a1", BeneficiaryID: "b1"},
		{AssetID: "a2", BeneficiaryID: "b1"},
		{AssetID: "a1", BeneficiaryID: "b2", Amount: decPtr(50000)},
	})

	require.Len(t, index, 2)
	assert.Equal(t, "b2", index["a1"].BeneficiaryID)
	require.NotNil(t, index["a1"].Amount)
	assert.True(t, dec(50000).Equal(*index["a1"].Amount))
}

func TestAllocatedAsset_NoDoubleSubtraction(t *testing.T) {
	// An allocated asset leaves the pool exactly once: the pool drops by the
	// asset's value and the allocated total reports it, nothing more.
	assets := []domain.Asset{
		{AssetID: "a1", AssetType: "Bankinsättning", Amount: dec(450000)},
		{AssetID: "a2", AssetType: "Aktier", Amount: dec(180000)},
	}
	allocations := domain.IndexAllocations([]domain.Allocation{
		{AssetID: "a2", BeneficiaryID: "bx"},
	})

	pool := settlement.DistributableAmount(assets, allocations)
	allocatedValue := settlement.AllocatedAssetValue(assets, allocations)

	assert.True(t, dec(450000).Equal(pool), "pool got %s", pool)
	assert.True(t, dec(180000).Equal(allocatedValue), "allocated got %s", allocatedValue)
}

func TestValidateAssets(t *testing.T) {
	tests := []struct {
		name    string
		assets  []domain.Asset
		wantErr bool
	}{
		{
			name:   "valid records pass",
			assets: []domain.Asset{{AssetID: "a1", AssetType: "Aktier", Amount: dec(100)}},
		},
		{
			name:    "negative amount rejected",
			assets:  []domain.Asset{{AssetID: "a1", AssetType: "Aktier", Amount: dec(-1)}},
			wantErr: true,
		},
		{
			name: "amountToRemain above amount rejected",
			assets: []domain.Asset{
				{AssetID: "a1", AssetType: "Aktier", Amount: dec(100), ToRemain: true, AmountToRemain: decPtr(101)},
			},
			wantErr: true,
		},
		{
			name: "negative amountToRemain rejected",
			assets: []domain.Asset{
				{AssetID: "a1", AssetType: "Aktier", Amount: dec(100), ToRemain: true, AmountToRemain: decPtr(-5)},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := settlement.ValidateAssets(tt.assets)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, apperrors.ErrValidation)
				return
			}
			assert.NoError(t, err)
		})
	}
}
