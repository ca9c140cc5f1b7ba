package salesforce

import (
	"context"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quillback/sfbridge/wire"
)

func TestMetadataDeploy(t *testing.T) {
	var gotAction string
	var gotBody string
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAction = r.Header.Get("SOAPAction")
		data, _ := io.ReadAll(r.Body)
		gotBody = string(data)
		w.Write([]byte(`<soapenv:Envelope><soapenv:Body><deployResponse><result><done>false</done><id>0Afxx00000001</id><state>Queued</state></result></deployResponse></soapenv:Body></soapenv:Envelope>`))
	}))
	md := NewMetadataClient(c)

	id, err := md.Deploy(context.Background(), "UEsDBA==", wire.MetadataDeployOptions{
		CheckOnly: true,
		TestLevel: "RunLocalTests",
	})
	require.NoError(t, err)
	assert.Equal(t, "0Afxx00000001", id)
	assert.Equal(t, "deploy", gotAction)
	assert.Contains(t, gotBody, "<met:ZipFile>UEsDBA==</met:ZipFile>")
	assert.Contains(t, gotBody, "<met:checkOnly>true</met:checkOnly>")
	assert.Contains(t, gotBody, "<met:testLevel>RunLocalTests</met:testLevel>")
	assert.Contains(t, gotBody, "<met:sessionId>"+testToken+"</met:sessionId>")
}

func TestMetadataCheckDeployStatus(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`<Envelope><Body><checkDeployStatusResponse><result>
			<id>0Afxx00000001</id><done>true</done><status>Succeeded</status><success>true</success>
			<numberComponentsDeployed>3</numberComponentsDeployed>
			<numberComponentsTotal>3</numberComponentsTotal>
			<numberComponentErrors>0</numberComponentErrors>
			<numberTestsCompleted>5</numberTestsCompleted>
			<numberTestsTotal>5</numberTestsTotal>
			<numberTestErrors>0</numberTestErrors>
		</result></checkDeployStatusResponse></Body></Envelope>`))
	}))
	md := NewMetadataClient(c)

	res, err := md.CheckDeployStatus(context.Background(), "0Afxx00000001", true)
	require.NoError(t, err)
	assert.True(t, res.Done)
	assert.True(t, res.Success)
	assert.Equal(t, "Succeeded", res.Status)
	assert.Equal(t, 3, res.NumberComponentsDeployed)
	assert.Equal(t, 5, res.NumberTestsCompleted)
}

func TestMetadataSOAPFault(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(500)
		w.Write([]byte(`<Envelope><Body><Fault><faultcode>sf:INVALID_TYPE</faultcode><faultstring>Unknown type FooBar</faultstring></Fault></Body></Envelope>`))
	}))
	md := NewMetadataClient(c)

	_, err := md.List(context.Background(), "FooBar", "")
	var merr *MetadataError
	require.ErrorAs(t, err, &merr)
	require.NotNil(t, merr.Transport)
	assert.Equal(t, KindAPI, merr.Transport.Kind)
	assert.Equal(t, "INVALID_TYPE", merr.Transport.ErrorCode)
}

func TestMetadataInvalidSessionFault(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(500)
		w.Write([]byte(`<Envelope><Body><Fault><faultcode>sf:INVALID_SESSION_ID</faultcode><faultstring>Invalid session: ` + testToken + `</faultstring></Fault></Body></Envelope>`))
	}))
	md := NewMetadataClient(c)

	_, err := md.Describe(context.Background())
	var merr *MetadataError
	require.ErrorAs(t, err, &merr)
	require.NotNil(t, merr.Transport)
	assert.Equal(t, KindAuth, merr.Transport.Kind)
	assert.NotContains(t, err.Error(), testToken)
}

func TestMetadataList(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`<Envelope><Body><listMetadataResponse>
			<result><fullName>Invoice</fullName><fileName>objects/Invoice.object</fileName><type>CustomObject</type><id>01Ixx1</id></result>
			<result><fullName>Quote</fullName><fileName>objects/Quote.object</fileName><type>CustomObject</type><id>01Ixx2</id></result>
		</listMetadataResponse></Body></Envelope>`))
	}))
	md := NewMetadataClient(c)

	components, err := md.List(context.Background(), "CustomObject", "")
	require.NoError(t, err)
	require.Len(t, components, 2)
	assert.Equal(t, "Invoice", components[0].FullName)
	assert.Equal(t, "CustomObject", components[1].ComponentType)
}

func TestXMLEscapeRoundTrip(t *testing.T) {
	raw := `a<b&"c"'d'>`
	escaped := xmlEscape(raw)
	assert.NotContains(t, escaped, "<b")
	assert.Equal(t, raw, xmlUnescaper.Replace(escaped))
}
