package datastore

import (
	"os"
	"path/filepath"
	"testing"
)

const (
	batchA = `,transaction_id,cust_id,tran_date,prod_subcat_code,prod_cat_code,Qty,Rate,Tax,total_amt,Store_type
0,T1,C1,28-02-2014,1,1,5,100,52.5,552.5,e-Shop
1,T2,C2,27/02/2014,4,1,-2,100,21,-221,TeleShop
2,T3,C9,20-02-2014,3,9,1,50,5.25,55.25,Flagship store
`
	batchB = `,transaction_id,cust_id,tran_date,prod_subcat_code,prod_cat_code,Qty,Rate,Tax,total_amt,Store_type
0,T4,C1,15-06-2020,4,2,2,10,2.1,22.1,MBR
1,T5,C3,1/3/2014,1,2,1,10,1.05,11.05,e-Shop
`
	customersCSV = `,customer_Id,DOB,Gender,city_code,country_code
0,C1,1990-06-15,M,4,PL
1,C2,26-09-1981,F,8,XX
2,C3,,M,2,DE
3,C1,1970-01-01,F,1,DE
`
	countryCodesCSV = `country_code,country
PL,Poland
DE,Germany
`
	prodInfoCSV = `prod_cat_code,prod_cat,prod_sub_cat_code,prod_subcat
1,Clothing,4,Mens
1,Clothing-dup,1,Women
2,Footwear,1,Kids
`
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

// writeFixture lays out a complete db directory and returns its sources.
func writeFixture(t *testing.T) Sources {
	t.Helper()
	dir := t.TempDir()
	src := DefaultSources(dir)

	writeFile(t, filepath.Join(src.TransactionsDir, "a.csv"), batchA)
	writeFile(t, filepath.Join(src.TransactionsDir, "b.csv"), batchB)
	writeFile(t, src.CustomersFile, customersCSV)
	writeFile(t, src.CountryCodesFile, countryCodesCSV)
	writeFile(t, src.ProductInfoFile, prodInfoCSV)

	return src
}

func writeBenchFile(path, content string) error {
	return os.WriteFile(path, []byte(content), 0o644)
}
