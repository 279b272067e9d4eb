package main

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"
)

// Posts the three demo spreadsheets to a running portal so the dashboard
// has something to show. Content is placeholder bytes; the server never
// parses spreadsheets in demo mode anyway.

type demoDoc struct {
	filename string
	branch   string
	fileType string
	content  string
}

var demoDocs = []demoDoc{
	{
		filename: "Patiobella_Procurement_Jan30.xlsx",
		branch:   "patiobella",
		fileType: "procurement",
		content: "Vendor,Item Name,Quantity,Unit Cost,Category\n" +
			"Atlantic Seafood,Lobster Tail,20,45.00,Seafood\n" +
			"Gourmet Meats,Wagyu Ribeye,15,85.00,Meat\n" +
			"Fine Wines Ltd,Vintage Bordeaux,12,120.00,Wine\n" +
			"Atlantic Seafood,Salmon Fillet,30,35.50,Seafood\n" +
			"VeggieHub,Organic Truffles,,150.00,Produce\n",
	},
	{
		filename: "Eateroo_Inventory_Jan30.xlsx",
		branch:   "eateroo",
		fileType: "inventory",
		content: "SKU,Units,Cost/Unit,Vendor,Dept\n" +
			"BUN-01,500,0.50,Bakery Direct,Bakery\n" +
			"PAT-02,450,2.80,MeatCo,Kitchen\n" +
			"SAL-01,12,15.00,FishFresh,Kitchen\n" +
			"POT-05,300,0.30,FarmToTable,Kitchen\n" +
			"CHZ-02,200,0.80,DairyKing,Kitchen\n",
	},
	{
		filename: "Weekend_Sales_Comparison.xlsx",
		branch:   "patiobella",
		fileType: "sales",
		content: "Branch,Segment,Revenue,CoGS,Labor\n" +
			"Patiobella,Lunch,12000,4500,2000\n" +
			"Patiobella,Dinner,45000,18000,5000\n" +
			"Eateroo,Lunch,28000,11000,3000\n" +
			"Eateroo,Dinner,15000,6000,2500\n",
	},
}

func main() {
	base := flag.String("addr", "http://localhost:8081", "portal base URL")
	token := flag.String("token", "demo-seed-token", "bearer token to attach")
	flag.Parse()

	for _, doc := range demoDocs {
		if err := postUpload(*base, *token, doc); err != nil {
			log.Fatalf("seeding %s failed: %v", doc.filename, err)
		}
		fmt.Println("seeded", doc.filename)
	}
}

func postUpload(base, token string, doc demoDoc) error {
	buf := &bytes.Buffer{}
	mw := multipart.NewWriter(buf)
	if err := mw.WriteField("branch", doc.branch); err != nil {
		return err
	}
	if err := mw.WriteField("file_type", doc.fileType); err != nil {
		return err
	}
	fw, err := mw.CreateFormFile("file", doc.filename)
	if err != nil {
		return err
	}
	if _, err := fw.Write([]byte(doc.content)); err != nil {
		return err
	}
	if err := mw.Close(); err != nil {
		return err
	}

	req, err := http.NewRequest(http.MethodPost, base+"/api/ingestion/upload", buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("status %d: %s", resp.StatusCode, body)
	}
	return nil
}
