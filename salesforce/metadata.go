package salesforce

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/quillback/sfbridge/wire"
)

// MetadataClient covers the Metadata API: deploy, retrieve, list, and
// describe. The Metadata API speaks SOAP; this client builds the
// envelopes itself and extracts the handful of fields the bridge
// exposes, so no XML binding layer is needed.
type MetadataClient struct {
	c *Client
}

// NewMetadataClient wraps the shared transport.
func NewMetadataClient(c *Client) *MetadataClient {
	return &MetadataClient{c: c}
}

func (m *MetadataClient) wrap(err error) error {
	if err == nil {
		return nil
	}
	var terr *Error
	if errors.As(err, &terr) {
		return &MetadataError{Message: terr.Message, Transport: terr}
	}
	return &MetadataError{Message: err.Error()}
}

// soapVersion is the API version without the REST "v" prefix.
func (m *MetadataClient) soapVersion() string {
	return strings.TrimPrefix(m.c.APIVersion(), "v")
}

func (m *MetadataClient) soapPath() string {
	return "/services/Soap/m/" + m.soapVersion()
}

const envelopeHeader = `<?xml version="1.0" encoding="utf-8"?>
<soap:Envelope xmlns:soap="http://schemas.xmlsoap.org/soap/envelope/" xmlns:met="http://soap.sforce.com/2006/04/metadata">
  <soap:Header>
    <met:SessionHeader>
      <met:sessionId>%s</met:sessionId>
    </met:SessionHeader>
  </soap:Header>
  <soap:Body>
%s
  </soap:Body>
</soap:Envelope>`

// call posts a SOAP body, checks for a fault, and returns the raw
// response XML.
func (m *MetadataClient) call(ctx context.Context, action, body string) (string, error) {
	envelope := fmt.Sprintf(envelopeHeader, m.c.accessToken, body)
	req, err := m.c.prepareRequest(ctx, "POST", m.soapPath(), strings.NewReader(envelope), "text/xml;charset=UTF-8")
	if err != nil {
		return "", m.wrap(err)
	}
	req.Header.Set("SOAPAction", action)
	req.Header.Del("Authorization")
	req.Header.Set("Accept", "text/xml")

	res, err := m.c.oneshot.Do(req)
	if err != nil {
		return "", m.wrap(m.c.classifyTransportErr(err))
	}
	defer res.Body.Close()
	data, err := io.ReadAll(res.Body)
	if err != nil {
		return "", m.wrap(wrapErr(KindConnection, "unable to read SOAP response", err))
	}
	xml := string(data)

	if code := xmlValue(xml, "faultcode"); code != "" {
		msg := m.c.scrubber.Scrub(xmlValue(xml, "faultstring"))
		// Strip the namespace prefix, e.g. "sf:INVALID_SESSION_ID".
		if i := strings.LastIndex(code, ":"); i >= 0 {
			code = code[i+1:]
		}
		transport := &Error{Kind: KindAPI, ErrorCode: code, Message: msg}
		if code == "INVALID_SESSION_ID" {
			transport = &Error{Kind: KindAuth, Message: msg}
		}
		return "", &MetadataError{Message: msg, Transport: transport}
	}
	if res.StatusCode/100 != 2 {
		return "", m.wrap(m.c.classifyStatus(res, data))
	}
	return xml, nil
}

// Deploy submits a package zip (already base64-encoded) and returns the
// async process ID.
func (m *MetadataClient) Deploy(ctx context.Context, zipBase64 string, opts wire.MetadataDeployOptions) (string, error) {
	rollback := true
	if opts.RollbackOnError != nil {
		rollback = *opts.RollbackOnError
	}
	var sb strings.Builder
	sb.WriteString("      <met:checkOnly>")
	sb.WriteString(strconv.FormatBool(opts.CheckOnly))
	sb.WriteString("</met:checkOnly>\n")
	sb.WriteString("      <met:ignoreWarnings>true</met:ignoreWarnings>\n")
	sb.WriteString("      <met:rollbackOnError>")
	sb.WriteString(strconv.FormatBool(rollback))
	sb.WriteString("</met:rollbackOnError>\n")
	sb.WriteString("      <met:singlePackage>true</met:singlePackage>\n")
	if opts.TestLevel != "" {
		fmt.Fprintf(&sb, "      <met:testLevel>%s</met:testLevel>\n", xmlEscape(opts.TestLevel))
	}
	if opts.TestLevel == "RunSpecifiedTests" {
		for _, test := range opts.RunTests {
			fmt.Fprintf(&sb, "      <met:runTests>%s</met:runTests>\n", xmlEscape(test))
		}
	}

	body := fmt.Sprintf(`    <met:deploy>
      <met:ZipFile>%s</met:ZipFile>
      <met:DeployOptions>
%s      </met:DeployOptions>
    </met:deploy>`, zipBase64, sb.String())

	xml, err := m.call(ctx, "deploy", body)
	if err != nil {
		return "", err
	}
	id := xmlValue(xml, "id")
	if id == "" {
		return "", &MetadataError{Message: "deploy response carries no async process id"}
	}
	return id, nil
}

// CheckDeployStatus polls a deployment started with Deploy.
func (m *MetadataClient) CheckDeployStatus(ctx context.Context, asyncProcessID string, includeDetails bool) (wire.MetadataDeployResult, error) {
	body := fmt.Sprintf(`    <met:checkDeployStatus>
      <met:asyncProcessId>%s</met:asyncProcessId>
      <met:includeDetails>%t</met:includeDetails>
    </met:checkDeployStatus>`, xmlEscape(asyncProcessID), includeDetails)

	xml, err := m.call(ctx, "checkDeployStatus", body)
	if err != nil {
		return wire.MetadataDeployResult{}, err
	}
	return wire.MetadataDeployResult{
		ID:                       xmlValue(xml, "id"),
		Done:                     xmlValue(xml, "done") == "true",
		Status:                   xmlValue(xml, "status"),
		Success:                  xmlValue(xml, "success") == "true",
		ErrorMessage:             xmlValue(xml, "errorMessage"),
		NumberComponentErrors:    xmlInt(xml, "numberComponentErrors"),
		NumberComponentsDeployed: xmlInt(xml, "numberComponentsDeployed"),
		NumberComponentsTotal:    xmlInt(xml, "numberComponentsTotal"),
		NumberTestErrors:         xmlInt(xml, "numberTestErrors"),
		NumberTestsCompleted:     xmlInt(xml, "numberTestsCompleted"),
		NumberTestsTotal:         xmlInt(xml, "numberTestsTotal"),
	}, nil
}

// Retrieve starts a metadata retrieval and returns the async process
// ID. A packaged request names a managed package; an unpackaged one
// carries a manifest of types and members.
func (m *MetadataClient) Retrieve(ctx context.Context, req wire.MetadataRetrieveRequest) (string, error) {
	version := req.APIVersion
	if version == "" {
		version = m.soapVersion()
	}

	var inner strings.Builder
	if req.IsPackaged {
		fmt.Fprintf(&inner, "        <met:packageNames>%s</met:packageNames>\n", xmlEscape(req.PackageName))
	} else {
		inner.WriteString("        <met:unpackaged>\n")
		for _, t := range req.Types {
			inner.WriteString("          <met:types>\n")
			for _, member := range t.Members {
				fmt.Fprintf(&inner, "            <met:members>%s</met:members>\n", xmlEscape(member))
			}
			fmt.Fprintf(&inner, "            <met:name>%s</met:name>\n", xmlEscape(t.Name))
			inner.WriteString("          </met:types>\n")
		}
		fmt.Fprintf(&inner, "          <met:version>%s</met:version>\n", xmlEscape(version))
		inner.WriteString("        </met:unpackaged>\n")
	}

	body := fmt.Sprintf(`    <met:retrieve>
      <met:retrieveRequest>
        <met:apiVersion>%s</met:apiVersion>
        <met:singlePackage>true</met:singlePackage>
%s      </met:retrieveRequest>
    </met:retrieve>`, xmlEscape(version), inner.String())

	xml, err := m.call(ctx, "retrieve", body)
	if err != nil {
		return "", err
	}
	id := xmlValue(xml, "id")
	if id == "" {
		return "", &MetadataError{Message: "retrieve response carries no async process id"}
	}
	return id, nil
}

// CheckRetrieveStatus polls a retrieval started with Retrieve. When
// includeZip is set and the retrieval finished, the base64 package zip
// is returned in the result.
func (m *MetadataClient) CheckRetrieveStatus(ctx context.Context, asyncProcessID string, includeZip bool) (wire.MetadataRetrieveResult, error) {
	body := fmt.Sprintf(`    <met:checkRetrieveStatus>
      <met:asyncProcessId>%s</met:asyncProcessId>
      <met:includeZipFile>%t</met:includeZipFile>
    </met:checkRetrieveStatus>`, xmlEscape(asyncProcessID), includeZip)

	xml, err := m.call(ctx, "checkRetrieveStatus", body)
	if err != nil {
		return wire.MetadataRetrieveResult{}, err
	}
	return wire.MetadataRetrieveResult{
		ID:           xmlValue(xml, "id"),
		Done:         xmlValue(xml, "done") == "true",
		Status:       xmlValue(xml, "status"),
		Success:      xmlValue(xml, "success") == "true",
		ZipBase64:    xmlValue(xml, "zipFile"),
		ErrorMessage: xmlValue(xml, "errorMessage"),
	}, nil
}

// List lists the components of one metadata type. folder is required
// for in-folder types such as EmailTemplate.
func (m *MetadataClient) List(ctx context.Context, metadataType, folder string) ([]wire.MetadataComponentInfo, error) {
	folderXML := ""
	if folder != "" {
		folderXML = fmt.Sprintf("\n        <met:folder>%s</met:folder>", xmlEscape(folder))
	}
	body := fmt.Sprintf(`    <met:listMetadata>
      <met:queries>
        <met:type>%s</met:type>%s
      </met:queries>
      <met:asOfVersion>%s</met:asOfVersion>
    </met:listMetadata>`, xmlEscape(metadataType), folderXML, xmlEscape(m.soapVersion()))

	xml, err := m.call(ctx, "listMetadata", body)
	if err != nil {
		return nil, err
	}
	blocks := xmlBlocks(xml, "result")
	out := make([]wire.MetadataComponentInfo, 0, len(blocks))
	for _, block := range blocks {
		out = append(out, wire.MetadataComponentInfo{
			FullName:         xmlValue(block, "fullName"),
			FileName:         xmlValue(block, "fileName"),
			ComponentType:    xmlValue(block, "type"),
			ID:               xmlValue(block, "id"),
			NamespacePrefix:  xmlValue(block, "namespacePrefix"),
			LastModifiedDate: xmlValue(block, "lastModifiedDate"),
		})
	}
	return out, nil
}

// Describe returns the metadata types available in the org.
func (m *MetadataClient) Describe(ctx context.Context) (wire.MetadataDescribeResult, error) {
	body := fmt.Sprintf(`    <met:describeMetadata>
      <met:asOfVersion>%s</met:asOfVersion>
    </met:describeMetadata>`, xmlEscape(m.soapVersion()))

	xml, err := m.call(ctx, "describeMetadata", body)
	if err != nil {
		return wire.MetadataDescribeResult{}, err
	}
	blocks := xmlBlocks(xml, "metadataObjects")
	out := wire.MetadataDescribeResult{
		OrganizationNamespace: xmlValue(xml, "organizationNamespace"),
		PartialSaveAllowed:    xmlValue(xml, "partialSaveAllowed") == "true",
		TestRequired:          xmlValue(xml, "testRequired") == "true",
		MetadataObjects:       make([]wire.MetadataTypeInfo, 0, len(blocks)),
	}
	for _, block := range blocks {
		out.MetadataObjects = append(out.MetadataObjects, wire.MetadataTypeInfo{
			XMLName:       xmlValue(block, "xmlName"),
			DirectoryName: xmlValue(block, "directoryName"),
			Suffix:        xmlValue(block, "suffix"),
			InFolder:      xmlValue(block, "inFolder") == "true",
			MetaFile:      xmlValue(block, "metaFile") == "true",
			ChildXMLNames: xmlValues(block, "childXmlNames"),
		})
	}
	return out, nil
}

var xmlReplacer = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&apos;",
)

func xmlEscape(s string) string { return xmlReplacer.Replace(s) }

var xmlUnescaper = strings.NewReplacer(
	"&lt;", "<",
	"&gt;", ">",
	"&quot;", `"`,
	"&apos;", "'",
	"&amp;", "&",
)

// xmlValue extracts the text of the first <tag>...</tag> element.
func xmlValue(xml, tag string) string {
	values := extractTag(xml, tag, 1, true)
	if len(values) == 0 {
		return ""
	}
	return values[0]
}

// xmlValues extracts the text of every <tag> element.
func xmlValues(xml, tag string) []string {
	return extractTag(xml, tag, -1, true)
}

// xmlBlocks extracts the inner XML of every <tag> element, children
// included and still escaped.
func xmlBlocks(xml, tag string) []string {
	return extractTag(xml, tag, -1, false)
}

func extractTag(xml, tag string, limit int, unescape bool) []string {
	var out []string
	rest := xml
	opening := "<" + tag + ">"
	closing := "</" + tag + ">"
	for limit < 0 || len(out) < limit {
		i := strings.Index(rest, opening)
		if i < 0 {
			break
		}
		rest = rest[i+len(opening):]
		j := strings.Index(rest, closing)
		if j < 0 {
			break
		}
		inner := rest[:j]
		if unescape {
			inner = xmlUnescaper.Replace(inner)
		}
		out = append(out, inner)
		rest = rest[j+len(closing):]
	}
	return out
}

func xmlInt(xml, tag string) int {
	n, _ := strconv.Atoi(xmlValue(xml, tag))
	return n
}
