package cndata

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/banbox/cndata/errs"
	"github.com/banbox/cndata/log"
	"github.com/banbox/cndata/utils"
	"github.com/sasha-s/go-deadlock"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

type ExgItem struct {
	Code  string `yaml:"code"`
	Title string `yaml:"title"`
	Index string `yaml:"index"`
}

type Product struct {
	Code       string          `yaml:"code"`
	Title      string          `yaml:"title"`
	Market     string          `yaml:"market"`
	Exchange   string          `yaml:"exchange"`
	Extend     string          `yaml:"extend"`
	Multiplier decimal.Decimal `yaml:"multiplier"` // contract unit, parsed from the yaml text
	PriceTick  decimal.Decimal `yaml:"price_tick"`
}

type productFile struct {
	Exchanges map[string]*ExgItem `yaml:"exchanges"`
	Products  []*Product          `yaml:"products"`
}

/*
ProductTable static product attributes not published in daily files, keyed by exchange, market and code.
read only after load
*/
type ProductTable struct {
	Exchanges map[string]*ExgItem
	items     map[string]*Product
}

//go:embed products.yml
var productsData []byte

var (
	defProducts *ProductTable
	lockProds   deadlock.Mutex
)

func (p *Product) Resolve(bases map[string]*Product) {
	if p.Extend == "" {
		return
	}
	base := bases[p.Extend]
	if base == nil {
		log.Warn("product extend invalid", zap.String("val", p.Extend), zap.String("from", p.Code))
		return
	}
	if p.Market == "" {
		p.Market = base.Market
	}
	if p.Exchange == "" {
		p.Exchange = base.Exchange
	}
	if p.Multiplier.IsZero() {
		p.Multiplier = base.Multiplier
	}
	if p.PriceTick.IsZero() {
		p.PriceTick = base.PriceTick
	}
}

func (p *Product) Unit() decimal.NullDecimal {
	if p == nil || p.Multiplier.IsZero() {
		return decimal.NullDecimal{}
	}
	return decimal.NewNullDecimal(p.Multiplier)
}

func (p *Product) Tick() decimal.NullDecimal {
	if p == nil || p.PriceTick.IsZero() {
		return decimal.NullDecimal{}
	}
	return decimal.NewNullDecimal(p.PriceTick)
}

func productKey(exchange, market, code string) string {
	return fmt.Sprintf("%s_%s_%s", exchange, market, strings.ToUpper(code))
}

func parseProducts(data []byte) (*ProductTable, *errs.Error) {
	var file productFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, errs.New(errs.CodeUnmarshalFail, err)
	}
	bases := make(map[string]*Product)
	res := &ProductTable{Exchanges: file.Exchanges, items: make(map[string]*Product)}
	for code, exg := range file.Exchanges {
		exg.Code = code
	}
	for _, item := range file.Products {
		item.Resolve(bases)
		if strings.HasPrefix(item.Code, "base") {
			bases[item.Code] = item
			continue
		}
		key := productKey(item.Exchange, item.Market, item.Code)
		if item.Multiplier.IsZero() || item.PriceTick.IsZero() {
			return nil, errs.NewMsg(errs.CodeParamInvalid, "`multiplier` and `price_tick` required: %s", key)
		}
		res.items[key] = item
	}
	return res, nil
}

/*
LoadProducts read the product table from path, or the embedded default when path is empty
*/
func LoadProducts(path string) (*ProductTable, *errs.Error) {
	if path != "" {
		data, err := utils.ReadFile(path)
		if err != nil {
			return nil, errs.New(errs.CodeIOReadFail, err)
		}
		return parseProducts(data)
	}
	lockProds.Lock()
	defer lockProds.Unlock()
	if defProducts != nil {
		return defProducts, nil
	}
	res, err := parseProducts(productsData)
	if err != nil {
		return nil, err
	}
	defProducts = res
	return res, nil
}

func (t *ProductTable) Get(exchange, market, code string) *Product {
	if t == nil {
		return nil
	}
	return t.items[productKey(exchange, market, code)]
}
